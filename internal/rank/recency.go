// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"strings"
	"time"
)

// DefaultTauDays is the recency decay constant: a document loses a factor of
// e in freshness every 14 days.
const DefaultTauDays = 14.0

// whenLayouts are the timestamp shapes the corpus carries: RFC 3339 with Z
// or offset, naive date-times (assumed UTC), and bare dates.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RecencyScore converts a publication timestamp into a freshness value in
// [0,1]: exp(-age/tau) with age in fractional days, clamped at zero for
// future timestamps. A missing or unparseable timestamp scores 0 — an
// arbitrarily old document, never an error.
func RecencyScore(publishedAt string, now time.Time, tauDays float64) float64 {
	if tauDays <= 0 {
		tauDays = DefaultTauDays
	}
	published, ok := ParseWhen(publishedAt)
	if !ok {
		return 0
	}
	ageDays := now.Sub(published).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-ageDays / tauDays)
}

// ParseWhen parses an ISO-8601-ish timestamp, trying each known layout in
// order. Naive timestamps are taken as UTC. ok is false for empty or
// unparseable input.
func ParseWhen(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
