// Package server is the HTTP surface: it serves the page, mounts one view per
// page load and applies the browser's signals to that view.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ishaan1911/portfolio/internal/content"
	"github.com/ishaan1911/portfolio/internal/render"
	"github.com/ishaan1911/portfolio/internal/session"
)

const (
	// ColorSchemeHint is the client hint carrying the OS color scheme.
	ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

	pingInterval    = 15 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server wires the view registry, renderer and content into gin routes.
type Server struct {
	engine   *gin.Engine
	registry *session.Registry
	content  *content.Model
}

// New builds the router. The registry should observe content.Sections().
func New(reg *session.Registry, rd *render.Renderer, m *content.Model) (*Server, error) {
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(salt))
	r.SetHTMLTemplate(rd.Template())
	r.StaticFS("/static", http.FS(Assets()))

	s := &Server{engine: r, registry: reg, content: m}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/", s.index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "views": s.registry.Len()})
	})

	views := r.Group("/views/:id")
	views.GET("/state", s.state)
	views.GET("/events", s.events)
	views.POST("/theme/toggle", s.toggleTheme)
	views.POST("/preference", s.preference)
	views.POST("/pointer", s.pointer)
	views.POST("/intersections", s.intersections)
	views.POST("/skills/select", s.selectSkill)
	views.POST("/unmount", s.unmount)
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server shutdown")
	}
	return nil
}
