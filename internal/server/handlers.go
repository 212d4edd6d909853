package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ishaan1911/portfolio/internal/render"
	"github.com/ishaan1911/portfolio/internal/session"
	"github.com/ishaan1911/portfolio/internal/view"
)

type preferenceRequest struct {
	Scheme string `json:"scheme" binding:"required,oneof=light dark"`
}

type pointerRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

type entryRequest struct {
	ID    string   `json:"id" binding:"required"`
	Ratio *float64 `json:"ratio" binding:"required,min=0,max=1"`
}

type intersectionsRequest struct {
	Entries []entryRequest `json:"entries" binding:"required,dive"`
}

type skillRequest struct {
	Category string `json:"category" binding:"required"`
	Index    *int   `json:"index" binding:"required,min=0"`
}

// index mounts a new view for this page load and renders it.
func (s *Server) index(c *gin.Context) {
	pref := session.ParsePreference(c.GetHeader(ColorSchemeHint))
	sess := s.registry.Mount(pref)

	snap, err := sess.Snapshot()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to mount view")
		return
	}

	c.Header("Accept-CH", ColorSchemeHint)
	c.Header("Vary", ColorSchemeHint)
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, render.PageTemplate, render.Page{
		Snapshot: snap,
		Content:  s.content,
		ViewID:   sess.ID,
		Assets:   render.DefaultAssets,
	})
	// gin records a failed render on the context and aborts it.
	if c.IsAborted() {
		_ = s.registry.Unmount(sess.ID)
		slog.Error("failed to render page", "view", sess.ID, "error", c.Errors.Last())
	}
}

func (s *Server) session(c *gin.Context) (*session.Session, bool) {
	sess, err := s.registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return sess, true
}

// apply runs one event against the view and answers with the new snapshot.
func (s *Server) apply(c *gin.Context, fn func(v *view.View, sig *view.Signals)) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	snap, err := sess.Do(fn)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) state(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	snap, err := sess.Snapshot()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) toggleTheme(c *gin.Context) {
	s.apply(c, func(v *view.View, _ *view.Signals) { v.ToggleTheme() })
}

func (s *Server) preference(c *gin.Context) {
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	dark := req.Scheme == string(view.ThemeDark)
	s.apply(c, func(_ *view.View, sig *view.Signals) { sig.SetPreference(dark) })
}

func (s *Server) pointer(c *gin.Context) {
	var req pointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p := view.Point{X: *req.X, Y: *req.Y}
	s.apply(c, func(_ *view.View, sig *view.Signals) { sig.MovePointer(p) })
}

func (s *Server) intersections(c *gin.Context) {
	var req intersectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	entries := make([]view.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, view.Entry{ID: e.ID, Ratio: *e.Ratio})
	}
	s.apply(c, func(_ *view.View, sig *view.Signals) { sig.Intersect(entries...) })
}

func (s *Server) selectSkill(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !s.content.HasSkill(req.Category, *req.Index) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown skill"})
		return
	}
	key := view.SkillKey{Category: req.Category, Index: *req.Index}
	s.apply(c, func(v *view.View, _ *view.Signals) { v.SelectSkill(key) })
}

func (s *Server) unmount(c *gin.Context) {
	if err := s.registry.Unmount(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// events streams snapshots as server-sent events until the client leaves or
// the view is unmounted.
func (s *Server) events(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	ch, err := sess.Subscribe(c.Request.Context(), 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	snap, err := sess.Snapshot()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("snapshot", snap)
	c.Writer.Flush()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ticker.C:
			c.SSEvent("ping", "{}")
			return true
		case snap, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snap)
			return true
		}
	})
}
