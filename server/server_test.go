// SPDX-License-Identifier: MIT
package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvlp/lpfile"
	"github.com/katalvlaran/lvlp/runner"
	"github.com/katalvlaran/lvlp/server"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const production = `{
  "sense": "max",
  "variables": ["chairs", "tables"],
  "objective": [3, 2],
  "constraints": [
    {"coefficients": [1, 1], "operator": "<=", "rhs": 4},
    {"coefficients": [1, 0], "operator": "<=", "rhs": 2}
  ]
}`

const ray = `
sense: max
objective: [1, 0]
constraints:
  - {coefficients: [1, -1], operator: "<=", rhs: 1}
`

func MustServer(t *testing.T, cfg server.Config) *httptest.Server {
	t.Helper()
	if cfg.Solver == (runner.Config{}) {
		cfg.Solver = runner.DefaultConfig()
	}
	s, err := server.New(cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return ts
}

func post(t *testing.T, url, body string) (int, lpfile.Result) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var res lpfile.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	return resp.StatusCode, res
}

func TestSolve_Optimal(t *testing.T) {
	ts := MustServer(t, server.Config{})

	code, res := post(t, ts.URL+"/v1/solve", production)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, simplex.Optimal, res.Status)
	require.Equal(t, 10.0, *res.Value)
	require.Equal(t, []lpfile.Assignment{{Name: "chairs", Value: 2}, {Name: "tables", Value: 2}}, res.Variables)
}

func TestSolve_StatusCodes(t *testing.T) {
	ts := MustServer(t, server.Config{})

	tests := []struct {
		name   string
		query  string
		body   string
		code   int
		status simplex.Status
	}{
		{"unbounded yaml", "", ray, http.StatusUnprocessableEntity, simplex.Unbounded},
		{"iteration limit", "?max_iterations=1", production, http.StatusUnprocessableEntity, simplex.IterationLimit},
		{"bland", "?rule=bland", production, http.StatusOK, simplex.Optimal},
		{"bad rule", "?rule=random", production, http.StatusBadRequest, simplex.InvalidInput},
		{"bad cap", "?max_iterations=zero", production, http.StatusBadRequest, simplex.InvalidInput},
		{"empty body", "", "", http.StatusBadRequest, simplex.InvalidInput},
		{"malformed", "", "{", http.StatusBadRequest, simplex.InvalidInput},
		{"ragged", "", `{"sense":"max","objective":[1,2],"constraints":[{"coefficients":[1],"operator":"<=","rhs":1}]}`, http.StatusBadRequest, simplex.InvalidInput},
		{"overflow", "", `{"sense":"max","objective":[1],"constraints":[{"coefficients":[1e-300],"operator":"<=","rhs":1e300}]}`, http.StatusUnprocessableEntity, simplex.NumericalFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, res := post(t, ts.URL+"/v1/solve"+tc.query, tc.body)
			require.Equal(t, tc.code, code)
			require.Equal(t, tc.status, res.Status)
			if tc.code != http.StatusOK {
				require.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestSolve_InfeasibleStartConfigured(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.RequireFeasibleStart = true
	ts := MustServer(t, server.Config{Solver: cfg})

	code, res := post(t, ts.URL+"/v1/solve", `{"sense":"min","objective":[2,3],"constraints":[{"coefficients":[1,1],"operator":">=","rhs":4}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Equal(t, simplex.InfeasibleStart, res.Status)
}

func TestSolve_BodyLimit(t *testing.T) {
	ts := MustServer(t, server.Config{MaxBodyBytes: 16})

	code, res := post(t, ts.URL+"/v1/solve", production)
	require.Equal(t, http.StatusRequestEntityTooLarge, code)
	require.Equal(t, simplex.InvalidInput, res.Status)
}

func TestSolve_MethodNotAllowed(t *testing.T) {
	ts := MustServer(t, server.Config{})

	resp, err := http.Get(ts.URL + "/v1/solve")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/healthz", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/v2/solve")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthzAndMetrics(t *testing.T) {
	ts := MustServer(t, server.Config{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok\n", string(b))

	post(t, ts.URL+"/v1/solve", production)
	post(t, ts.URL+"/v1/solve", ray)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	b, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Contains(t, string(b), `lvlp_solves_total{status="optimal"} 1`)
	require.Contains(t, string(b), `lvlp_solves_total{status="unbounded"} 1`)
	require.Contains(t, string(b), "lvlp_solve_pivots_count 2")
}

func TestNew_Errors(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := server.New(server.Config{}, reg)
	require.ErrorIs(t, err, runner.ErrInvalidConfig)

	// the rejected config left nothing registered
	_, err = server.New(server.Config{Solver: runner.DefaultConfig()}, reg)
	require.NoError(t, err)
	_, err = server.New(server.Config{Solver: runner.DefaultConfig()}, reg)
	require.Error(t, err)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	s, err := server.New(server.Config{Listen: "127.0.0.1:0", Solver: runner.DefaultConfig()}, prometheus.NewRegistry())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
