package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PixelFarm_Go/internal/database"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/handler"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/metrics"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/sse"
	"github.com/osse101/PixelFarm_Go/internal/texture"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	SaveSlot       string
}

// Deps are the services the routes call into. DBPool, Slots, Pool and
// Textures may be nil.
type Deps struct {
	Engine   *engine.Engine
	Store    save.Store
	Hub      *sse.Hub
	DBPool   database.Pool
	Slots    save.Lister
	Pool     handler.Enqueuer
	Textures texture.Fetcher
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(MaxRequestsPerWindow)

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	checks := []handler.ReadinessCheck{handler.SaveStoreCheck(deps.Store, opts.SaveSlot)}
	if deps.DBPool != nil {
		checks = append(checks, handler.DatabaseCheck(deps.DBPool))
	}
	r.Get("/readyz", handler.HandleReadyz(checks...))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	farm := handler.NewFarmHandler(deps.Engine, deps.Store, opts.SaveSlot)
	if deps.Pool != nil && deps.Textures != nil {
		farm.WithTextures(deps.Pool, deps.Textures)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", handler.HandleGetCatalog())
		r.Get("/catalog/{id}", handler.HandleGetCatalogEntry())

		if deps.Slots != nil {
			r.Get("/saves", handler.HandleListSaves(deps.Slots))
		}
		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}

		r.Route("/farm", func(r chi.Router) {
			r.Get("/state", farm.HandleGetState)
			r.Post("/plant", farm.HandlePlant)
			r.Post("/harvest", farm.HandleHarvest)
			r.Post("/harvest-all", farm.HandleHarvestAll)
			r.Post("/craft", farm.HandleCraft)
			r.Post("/sell", farm.HandleSell)
			r.Post("/orders/{id}/fulfill", farm.HandleFulfillOrder)
			r.Post("/land/expand", farm.HandleExpandLand)
			r.Post("/reset", farm.HandleReset)
			r.Post("/texture", farm.HandleRequestTexture)

			r.Route("/mascots/{id}", func(r chi.Router) {
				r.Post("/buy", farm.HandleBuyMascot)
				r.Post("/equip", farm.HandleEquipMascot)
			})

			r.Post("/save", farm.HandleSave)
			r.Post("/load", farm.HandleLoad)
			r.Get("/export", farm.HandleExport)
			r.Post("/import", farm.HandleImport)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working behind the logging wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func quietPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if quietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
