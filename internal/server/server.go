// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the ranking engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/news-engine/pkg/types"
)

// Ranker is the query surface the server needs from the ranking engine.
type Ranker interface {
	Rank(ctx context.Context, query string, k int) ([]types.ScoredResult, error)
}

// Server serves ranked search over HTTP.
type Server struct {
	engine  Ranker
	version string
	router  *gin.Engine
	http    *http.Server
}

// New builds a Server around engine listening on cfg's host and port.
func New(cfg types.ServerConfig, engine Ranker, version string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		engine:  engine,
		version: version,
		router:  router,
	}
	s.routes()

	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/search", s.handleSearch)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start serves HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
