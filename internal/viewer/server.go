// Package viewer serves the local evaluation history in a browser: a run
// list, run detail pages, and a small JSON API. It only reads the local
// database and never talks to the backend.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fairai-labs/fairctl/internal/ports"
)

// Server is the local history viewer.
type Server struct {
	engine *gin.Engine
	runs   ports.RunRepository
	logger *slog.Logger
	port   int
}

// NewServer creates a viewer over the given run repository.
func NewServer(runs ports.RunRepository, logger *slog.Logger, port int) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(pagesHTML)))

	s := &Server{
		engine: engine,
		runs:   runs,
		logger: logger,
		port:   port,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine.GET("/", s.handleRunList)
	s.engine.GET("/runs/:id", s.handleRunDetail)

	apiGroup := s.engine.Group("/api")
	apiGroup.GET("/runs", s.handleAPIRuns)
	apiGroup.GET("/runs/:id", s.handleAPIRun)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("viewer shutdown failed", "error", err)
		}
	}()

	s.logger.Info("viewer listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
