package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/ziadkadry99/ai-heroes/internal/views"
)

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := views.IndexPage{Delay: s.sim.Delay()}
	s.render(w, func(buf *bytes.Buffer) error { return s.renderer.Index(buf, page) })
}

func (s *Site) handleGallery(w http.ResponseWriter, r *http.Request) {
	page := views.BuildGallery(s.cat, views.ParseFilter(r.URL.Query().Get("filter")), s.filters)
	s.render(w, func(buf *bytes.Buffer) error { return s.renderer.Gallery(buf, page) })
}

func (s *Site) handleDetail(w http.ResponseWriter, r *http.Request) {
	targets := views.DetailTargets()
	redirect, err := views.RenderDetail(s.cat, r.URL.Query(), targets)
	if errors.Is(err, views.ErrLookupMiss) {
		s.logger.Debug("detail lookup miss", "query", r.URL.RawQuery)
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	page := views.DetailFromTargets(targets)
	s.render(w, func(buf *bytes.Buffer) error { return s.renderer.Detail(buf, page) })
}

func (s *Site) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, func(buf *bytes.Buffer) error { return s.renderer.About(buf) })
}

func (s *Site) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(views.Stylesheet)
}

func (s *Site) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(views.Script)
}

// fragmentResponse carries rendered HTML keyed by the target element id.
type fragmentResponse struct {
	Targets map[string]string `json:"targets"`
	Filter  views.Filter      `json:"filter"`
}

func (s *Site) handleGalleryFragment(w http.ResponseWriter, r *http.Request) {
	page := views.BuildGallery(s.cat, views.ParseFilter(r.URL.Query().Get("filter")), s.filters)
	targets := views.NewTargets(views.GridTarget)
	if err := s.renderer.RenderGrid(targets, page); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, fragmentResponse{Targets: targets, Filter: page.Filter})
}

// render buffers the page so a template error can still become a 500.
func (s *Site) render(w http.ResponseWriter, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.logger.Error("rendering page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
