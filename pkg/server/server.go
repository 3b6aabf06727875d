package server

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/m-mizutani/ecotravel/pkg/catalog"
	"github.com/m-mizutani/ecotravel/pkg/usecase/editor"
	"github.com/m-mizutani/ecotravel/pkg/usecase/planner"
	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// Server is the HTTP surface of the itinerary planner: one generation
// endpoint plus the saved-list and current-document operations backing the
// web client.
type Server struct {
	planner      *planner.UseCase
	store        *store.Store
	editor       *editor.UseCase
	destinations []catalog.Destination
	limiter      *rateLimiter
}

// Option is a functional option for Server
type Option func(*Server)

// WithGenerateLimit overrides the per-IP rate limit on the generation
// endpoint.
func WithGenerateLimit(limit rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = newRateLimiter(limit, burst)
	}
}

// New creates a new Server instance
func New(p *planner.UseCase, st *store.Store, destinations []catalog.Destination, opts ...Option) *Server {
	s := &Server{
		planner:      p,
		store:        st,
		editor:       editor.New(st),
		destinations: destinations,
		// One generation per 10s per IP with a small burst; generation
		// cycles are expensive upstream calls.
		limiter: newRateLimiter(rate.Every(10*time.Second), 3),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", s.health)

	router.POST("/api/itineraries/generate", s.limiter.limit(s.generateItinerary))
	router.GET("/api/itineraries", s.listSaved)
	router.POST("/api/itineraries", s.saveItinerary)
	router.DELETE("/api/itineraries/:id", s.deleteItinerary)

	router.GET("/api/current", s.getCurrent)
	router.PUT("/api/current", s.setCurrent)
	router.POST("/api/current/move", s.moveActivity)
	router.POST("/api/current/activities/delete", s.deleteActivity)

	router.GET("/api/destinations", s.listDestinations)

	return router
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.router())

	return requestLogging(securityHeaders(handler))
}
