package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/designsuite/portal/config"
	"github.com/viant/designsuite/portal/module"
	"github.com/viant/designsuite/portal/page"
)

func newTestServer(t *testing.T, env map[string]string) *Server {
	t.Helper()
	cfg := config.New()
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	renderer, err := page.NewRenderer()
	require.NoError(t, err)
	return New(cfg, renderer, nil)
}

func TestServer_Page(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		config.EnvInterviewerURL: "https://example.com/tool",
		config.EnvAnalyzerURL:    "",
	})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	body := rec.Body.String()
	assert.Contains(t, body, `href="https://example.com/tool"`)
	assert.Contains(t, body, "RAG Analyzer URL not configured.")
	assert.Equal(t, 1, strings.Count(body, `class="button"`))
}

func TestServer_Modules(t *testing.T) {
	srv := newTestServer(t, map[string]string{config.EnvAnalyzerURL: module.AnalyzerPlaceholder})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/modules", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response ModulesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.True(t, response.Modules[0].Configured)
	assert.Equal(t, module.DefaultInterviewerURL, response.Modules[0].URL)
	assert.False(t, response.Modules[1].Configured)
	assert.Equal(t, "RAG Analyzer URL not configured.", response.Modules[1].Warning)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/modules/interviewer", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"configured":true`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/modules/sketcher", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Launch(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		config.EnvInterviewerURL: "https://example.com/tool",
		config.EnvAnalyzerURL:    "  ",
	})
	var testCases = []struct {
		description string
		path        string
		status      int
		location    string
		body        string
	}{
		{description: "configured", path: "/launch/interviewer", status: http.StatusFound, location: "https://example.com/tool"},
		{description: "not configured", path: "/launch/analyzer", status: http.StatusNotFound, body: "RAG Analyzer URL not configured."},
		{description: "unknown", path: "/launch/sketcher", status: http.StatusNotFound, body: "unknown module"},
	}
	for _, testCase := range testCases {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCase.path, nil))
		assert.Equal(t, testCase.status, rec.Code, testCase.description)
		assert.Equal(t, testCase.location, rec.Header().Get("Location"), testCase.description)
		assert.Contains(t, rec.Body.String(), testCase.body, testCase.description)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/launch/interviewer", nil))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "designsuite_page_renders_total 1")
	assert.Contains(t, body, `designsuite_launches_total{module="interviewer",outcome="redirect"} 1`)
	assert.Contains(t, body, `route="/launch/{id}"`)
}

func TestServer_Serve(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	srv := newTestServer(t, map[string]string{config.EnvAddr: addr})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
