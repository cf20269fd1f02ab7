// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func stampDaysAgo(days float64) string {
	return testNow.Add(-time.Duration(days * 24 * float64(time.Hour))).Format(time.RFC3339)
}

func TestRecencyScoreFixedAges(t *testing.T) {
	tests := []struct {
		ageDays float64
		want    float64
	}{
		{0, 1.0},
		{14, math.Exp(-1)},
		{28, math.Exp(-2)},
	}
	for _, tt := range tests {
		got := RecencyScore(stampDaysAgo(tt.ageDays), testNow, 14)
		if !almostEqual(got, tt.want) {
			t.Errorf("RecencyScore(age=%v days) = %f, want %f", tt.ageDays, got, tt.want)
		}
	}
}

func TestRecencyScoreHalfLife(t *testing.T) {
	// At age τ·ln(2) the score halves.
	got := RecencyScore(stampDaysAgo(14*math.Ln2), testNow, 14)
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("RecencyScore at half-life = %f, want 0.5", got)
	}
}

func TestRecencyScoreStrictlyDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for _, age := range []float64{0, 1, 3.5, 7, 14, 30, 90} {
		got := RecencyScore(stampDaysAgo(age), testNow, 14)
		if got >= prev {
			t.Fatalf("RecencyScore(age=%v) = %f, not below previous %f", age, got, prev)
		}
		if got <= 0 || got > 1 {
			t.Fatalf("RecencyScore(age=%v) = %f, outside (0,1]", age, got)
		}
		prev = got
	}
}

func TestRecencyScoreFutureClampsToFresh(t *testing.T) {
	future := testNow.Add(48 * time.Hour).Format(time.RFC3339)
	if got := RecencyScore(future, testNow, 14); got != 1.0 {
		t.Errorf("RecencyScore(future) = %f, want 1.0", got)
	}
}

func TestRecencyScoreMissingOrMalformed(t *testing.T) {
	for _, stamp := range []string{"", "  ", "not-a-date", "2026-13-45T99:00:00Z"} {
		if got := RecencyScore(stamp, testNow, 14); got != 0 {
			t.Errorf("RecencyScore(%q) = %f, want 0", stamp, got)
		}
	}
}

func TestParseWhen(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"rfc3339 zulu", "2026-03-01T10:30:00Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), true},
		{"rfc3339 offset", "2026-03-01T12:30:00+02:00", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), true},
		{"naive datetime is utc", "2026-03-01T10:30:00", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), true},
		{"space separator", "2026-03-01 10:30:00", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), true},
		{"bare date", "2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"surrounding space", " 2026-03-01 ", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "next tuesday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWhen(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseWhen(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseWhen(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
