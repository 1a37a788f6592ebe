// Package server exposes the permutation pipeline and resumable
// enumerations over HTTP.
//
// The API is versioned under /v1:
//
//	POST   /v1/permutations          one-shot enumeration (heap or lex order)
//	POST   /v1/enumerations          create a resumable lexical walk
//	GET    /v1/enumerations/{id}     inspect a walk's cursor
//	POST   /v1/enumerations/{id}/next  advance the walk by a batch
//	DELETE /v1/enumerations/{id}     discard a walk
//
// One-shot requests go through the pipeline and hit its cache. Resumable
// walks live in an enumstore backend, so any replica can serve the next
// batch.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/permute/pkg/enumstore"
	"github.com/matzehuels/permute/pkg/pipeline"
)

// requestTimeout bounds a single request end to end. Enumerations are
// capped well below anything that takes this long, so hitting it means
// something is stuck.
const requestTimeout = 60 * time.Second

// shutdownTimeout is how long in-flight requests get to finish once the
// server begins to stop.
const shutdownTimeout = 10 * time.Second

// Server handles HTTP requests. Construct with New.
type Server struct {
	runner *pipeline.Runner
	store  enumstore.Store
	logger *log.Logger
}

// New creates a server.
// If runner is nil, a cacheless runner is used.
// If store is nil, enumerations live in process memory.
// If logger is nil, the default logger is used.
func New(runner *pipeline.Runner, store enumstore.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, logger)
	}
	if store == nil {
		store = enumstore.NewMemStore()
	}
	return &Server{
		runner: runner,
		store:  store,
		logger: logger,
	}
}

// Router assembles the chi router with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/permutations", s.handlePermutations)

		r.Route("/enumerations", func(r chi.Router) {
			r.Post("/", s.handleCreateEnumeration)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetEnumeration)
				r.Delete("/", s.handleDeleteEnumeration)
				r.Post("/next", s.handleNextEnumeration)
			})
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "timeout", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs one line per request with the chi request ID.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
