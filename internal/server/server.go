package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/manishpatil55/demo-product-page/internal/contact"
	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/live"
	"github.com/manishpatil55/demo-product-page/internal/site"
)

// Paths the pages are wired to.
const (
	LivePath    = "/ws/carousel"
	ContactPath = "/api/contact"
)

// Config holds server configuration.
type Config struct {
	Addr             string
	AssetsDir        string // served under /assets/
	AllowAll         bool   // allow all CORS and websocket origins (dev mode)
	AdminToken       string // bearer token for the lead listing routes
	AutoplayInterval time.Duration
	ScrollCycle      time.Duration
}

// Server serves the product page, its APIs and the live carousel.
type Server struct {
	cfg      Config
	logger   *zap.Logger
	holder   *content.Holder
	store    *contact.Store
	notifier *contact.Notifier
	pages    *site.Handlers
	live     *live.Handler
	router   chi.Router

	mu         sync.Mutex
	httpServer *http.Server
	closed     bool
}

// New creates a server for the document in holder. store may be nil, in
// which case the contact API is not mounted and pages show no form.
func New(cfg Config, holder *content.Holder, store *contact.Store, notifier *contact.Notifier, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		holder:   holder,
		store:    store,
		notifier: notifier,
	}

	opts := site.Options{
		AutoplayInterval: cfg.AutoplayInterval,
		ScrollCycle:      cfg.ScrollCycle,
		LiveURL:          LivePath,
	}
	if store != nil {
		opts.ContactAction = ContactPath
	}
	s.pages = site.NewHandlers(holder, opts)
	s.live = live.NewHandler(holder, live.Options{
		Interval:        cfg.AutoplayInterval,
		AllowAllOrigins: cfg.AllowAll,
		Logger:          logger.Named("live"),
	})

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	// Websocket sessions outlive the request timeout.
	r.Handle(LivePath, s.live)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		s.pages.RegisterRoutes(r)
		if s.store != nil {
			contact.RegisterRoutes(r, s.store, s.formFields, s.notifier, s.cfg.AdminToken)
		}
		if s.cfg.AssetsDir != "" {
			fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.AssetsDir)))
			r.Get("/assets/*", fs.ServeHTTP)
		}
	})

	return r
}

func (s *Server) formFields() []content.FormField {
	if doc := s.holder.Get(); doc != nil {
		return doc.Contact.FormFields
	}
	return nil
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Live returns the live carousel handler.
func (s *Server) Live() *live.Handler { return s.live }

// Config returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured address. It returns nil after
// Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	hs := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return nil
	}
	s.httpServer = hs
	s.mu.Unlock()

	s.logger.Info("productpage server listening", zap.String("addr", ln.Addr().String()))
	if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server, then closes live sessions and
// waits for pending lead notifications.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	hs := s.httpServer
	s.mu.Unlock()

	var err error
	if hs != nil {
		err = hs.Shutdown(ctx)
	}
	s.live.Close()
	if s.notifier != nil {
		s.notifier.Wait()
	}
	return err
}

// requestLogger logs each request through zap once it completes.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Debug("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
