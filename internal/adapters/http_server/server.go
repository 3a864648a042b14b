package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Options struct {
	CORSOrigins    []string
	AssistantRPS   float64 // per client IP on /v1/search and /v1/chat; <= 0 disables
	AssistantBurst int
	PublicDir      string
	Timeout        time.Duration
	// TrustProxy honours X-Forwarded-For / X-Real-IP. Leave it off unless a
	// proxy that overwrites those headers sits in front.
	TrustProxy bool
}

type Server struct {
	mux       *chi.Mux
	limiter   *RateLimiter
	publicDir string
}

func New(o Options) *Server {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	m := chi.NewRouter()

	if o.TrustProxy {
		m.Use(chimw.RealIP)
	}
	m.Use(chimw.RequestID)
	m.Use(Metrics)
	m.Use(Logger(log.Logger))
	m.Use(Recover)
	m.Use(Timeout(o.Timeout))
	m.Use(cors.Handler(cors.Options{
		AllowedOrigins: o.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	}))

	s := &Server{mux: m, publicDir: o.PublicDir}
	if o.AssistantRPS > 0 {
		burst := o.AssistantBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = NewRateLimiter(rate.Limit(o.AssistantRPS), burst)
	}
	return s
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

// Sweep evicts idle per-IP limiters until ctx is done.
func (s *Server) Sweep(ctx context.Context, every time.Duration) {
	if s.limiter != nil {
		s.limiter.Cleanup(ctx, every)
	}
}

func (s *Server) limited(r chi.Router) chi.Router {
	if s.limiter == nil {
		return r
	}
	return r.With(s.limiter.Middleware)
}
