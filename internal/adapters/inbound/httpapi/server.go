// Package httpapi serves the transformation backend over HTTP: the agent
// stream, document conversion, spec saving and report rendering.
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
)

// HealthMessage is returned by the health endpoint.
const HealthMessage = "Transformation backend is running"

// Deps are the services behind the API.
type Deps struct {
	Renders    *application.RenderService
	Transforms *application.TransformService
	Decoder    domain.SpecDecoder
	Validator  domain.SpecValidator
	Converter  domain.DocumentConverter
	// Saves writes save-spec payloads; its Prepare must return root itself.
	Saves domain.Workspace
	// ArtifactDir is the directory name used in instruction references.
	ArtifactDir string
	Log         logrus.FieldLogger
}

type server struct {
	Deps
	metrics *metrics
}

// NewRouter builds the API router.
func NewRouter(d Deps) http.Handler {
	s := &server{Deps: d, metrics: newMetrics()}
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.logRequests)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		MaxAge:         300,
	}))

	r.Get("/metrics", s.metrics.handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/transform", s.handleTransform)
		r.Post("/convert-document", s.handleConvertDocument)
		r.Post("/save-spec", s.handleSaveSpec)
		r.Post("/render/{kind}/{format}", s.handleRender)
		r.Post("/preview/{kind}", s.handlePreview)
		r.Post("/instructions", s.handleInstructions)
		r.Post("/validate", s.handleValidate)
	})

	return r
}

// logRequests logs one line per request with logrus and counts it.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.metrics.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		s.Log.WithFields(logrus.Fields{
			"method":     r.Method,
			"route":      route,
			"status":     status,
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": chimiddleware.GetReqID(r.Context()),
		}).Info("request")
	})
}
