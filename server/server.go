// SPDX-License-Identifier: MIT

// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /v1/solve   problem document (JSON or YAML) -> lpfile.Result JSON
//	GET  /healthz    liveness
//	GET  /metrics    Prometheus exposition
//
// /v1/solve always answers with an lpfile.Result JSON body: 200 for optimal
// outcomes, 422 for solver verdicts other than optimal, and 400 for
// malformed input. The query
// parameters rule and max_iterations override the configured solver options
// for one request.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/lvlp/lpfile"
	"github.com/katalvlaran/lvlp/metrics"
	"github.com/katalvlaran/lvlp/runner"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
)

// Defaults for Config fields left zero.
const (
	DefaultListen          = ":8080"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the listener settings and the default solver configuration.
type Config struct {
	Listen          string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	Solver          runner.Config
}

// Server serves solve requests. Handler() is safe for concurrent use: every
// request builds its own tableau.
type Server struct {
	cfg    Config
	run    *runner.Runner
	gather prometheus.Gatherer
}

// New registers the solver metrics on reg and prepares the routes.
// On error nothing stays registered on reg.
// Errors: runner.ErrInvalidConfig, metric registration conflicts.
func New(cfg Config, reg *prometheus.Registry) (*Server, error) {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	col, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}
	run, err := runner.New(cfg.Solver, col)
	if err != nil {
		col.Unregister(reg)
		return nil, err
	}

	return &Server{cfg: cfg, run: run, gather: reg}, nil
}

// Handler returns the router. A known path requested with the wrong method
// answers 405.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/v1/solve", s.solve).Methods(http.MethodPost)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		klog.Infof("listening on %s", s.cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	klog.V(2).Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

func (s *Server) solve(w http.ResponseWriter, req *http.Request) {
	cfg, err := s.requestConfig(req)
	if err != nil {
		s.reply(w, http.StatusBadRequest, lpfile.NewResult(nil, simplex.Solution{}, err))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.reply(w, http.StatusRequestEntityTooLarge, lpfile.NewResult(nil, simplex.Solution{}, err))
			return
		}
		s.reply(w, http.StatusBadRequest, lpfile.NewResult(nil, simplex.Solution{}, err))
		return
	}

	doc, err := lpfile.Decode(body)
	if err != nil {
		s.reply(w, http.StatusBadRequest, lpfile.NewResult(nil, simplex.Solution{}, err))
		return
	}

	res, _ := s.run.RunWith(doc, cfg)
	s.reply(w, statusCode(res.Status), res)
}

// requestConfig applies the rule and max_iterations query overrides.
func (s *Server) requestConfig(req *http.Request) (runner.Config, error) {
	cfg := s.run.Config()
	q := req.URL.Query()
	if v := q.Get("rule"); v != "" {
		r, err := simplex.ParseRule(v)
		if err != nil {
			return cfg, err
		}
		cfg.Rule = r
	}
	if v := q.Get("max_iterations"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("max_iterations %q: %w", v, runner.ErrInvalidConfig)
		}
		cfg.MaxIterations = n
	}

	return cfg, cfg.Validate()
}

func statusCode(st simplex.Status) int {
	switch st {
	case simplex.Optimal:
		return http.StatusOK
	case simplex.Unbounded, simplex.IterationLimit, simplex.InfeasibleStart, simplex.NumericalFailure:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// reply writes res as JSON. When res cannot be encoded (a non-finite value),
// a 500 carrying only name, status and error is sent instead; that subset
// always encodes.
func (s *Server) reply(w http.ResponseWriter, code int, res lpfile.Result) {
	b, err := lpfile.Encode(res, lpfile.FormatJSON)
	if err != nil {
		klog.Errorf("encoding result: %v", err)
		code = http.StatusInternalServerError
		b, _ = lpfile.Encode(lpfile.Result{Name: res.Name, Status: res.Status, Error: err.Error()}, lpfile.FormatJSON)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(b); err != nil {
		klog.V(2).Infof("writing response: %v", err)
	}
}
