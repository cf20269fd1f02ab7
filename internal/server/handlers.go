// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/news-engine/pkg/types"
)

const (
	defaultK = 5
	maxK     = 50
)

// handleSearch answers GET /search?q=...&k=5 with blended scores for the
// top-k documents.
func (s *Server) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	k := defaultK
	if raw := c.Query("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxK {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("k must be an integer between 1 and %d", maxK)})
			return
		}
		k = n
	}

	results, err := s.engine.Rank(c.Request.Context(), query, k)
	if err != nil {
		// Ranking fails only when the retrieval backend does, so report it
		// as an upstream failure.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []types.ScoredResult{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// handleHealth answers GET /health with a liveness payload.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "news-engine",
		"version":   s.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
