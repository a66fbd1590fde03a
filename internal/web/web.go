package web

import (
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/generator"
	"github.com/ziadkadry99/ai-heroes/internal/logging"
	"github.com/ziadkadry99/ai-heroes/internal/views"
)

// Site serves the gallery pages, their assets, the JSON API and the
// generator push channel.
type Site struct {
	cat      *catalog.Catalog
	sim      *generator.Simulator // shared by the JSON API
	pageSim  func() *generator.Simulator
	renderer *views.Renderer
	filters  []views.Filter
	logger   *log.Logger
}

// Option configures a Site.
type Option func(*Site)

// WithPageSimulators sets the factory that gives every connected page its
// own simulator.
func WithPageSimulators(fn func() *generator.Simulator) Option {
	return func(s *Site) { s.pageSim = fn }
}

// New creates a Site. sim serves the JSON API. Each WebSocket connection
// gets a simulator of its own, by default one with sim's delay. Empty
// filters fall back to views.DefaultFilters and a nil logger discards
// output.
func New(cat *catalog.Catalog, sim *generator.Simulator, renderer *views.Renderer, filters []views.Filter, logger *log.Logger, opts ...Option) *Site {
	if len(filters) == 0 {
		filters = views.DefaultFilters
	}
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Site{
		cat:      cat,
		sim:      sim,
		renderer: renderer,
		filters:  filters,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pageSim == nil {
		s.pageSim = func() *generator.Simulator {
			return generator.New(cat, generator.WithDelay(sim.Delay()), generator.WithLogger(logger))
		}
	}
	return s
}

// RegisterRoutes mounts the page, asset and API routes onto the given
// router.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/index.html", s.handleIndex)
	r.Get(views.GalleryPath, s.handleGallery)
	r.Get(views.DetailPath, s.handleDetail)
	r.Get(views.AboutPath, s.handleAbout)
	r.Get("/style.css", s.handleStylesheet)
	r.Get("/app.js", s.handleScript)

	r.Get("/fragments/gallery", s.handleGalleryFragment)

	r.Route("/api", func(r chi.Router) {
		r.Get("/characters", s.handleListCharacters)
		r.Get("/characters/{id}", s.handleGetCharacter)
		r.Post("/generate", s.handleTriggerGenerate)
		r.Get("/generate", s.handleGenerateStatus)
	})
}

// RegisterStreams mounts the long-lived WebSocket route. It belongs on a
// router without a request timeout.
func (s *Site) RegisterStreams(r chi.Router) {
	r.Get("/ws/generate", s.handleWebSocket)
}

// resultFields lays out a generation result under the result* targets, or
// blank targets when there is none yet.
func resultFields(res *generator.Result) views.Fields {
	if res == nil {
		return views.BlankFields(views.ResultPrefix)
	}
	return views.CharacterFields(views.ResultPrefix, res.Character)
}
