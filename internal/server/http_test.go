package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type pingRoutes struct {
	sawRequestLogger bool
}

func (p *pingRoutes) Register(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info().Msg("ping")
		p.sawRequestLogger = logging.FromContext(r.Context()).GetLevel() != zerolog.Disabled
		writeJSON(w, http.StatusOK, map[string]bool{"pong": true})
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func testConfig() *config.App {
	return &config.App{
		HTTPAddr: "127.0.0.1:0",
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "true"},
			MaxAge:         3600,
		},
	}
}

func serve(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestHealthz(t *testing.T) {
	r := NewRouter(testConfig(), zerolog.Nop(), Options{})

	rec := serve(r, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	r := NewRouter(testConfig(), zerolog.Nop(), Options{})

	rec := serve(r, http.MethodGet, "/categorie", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]interface{}{"success": false, "error": float64(404), "message": "Not found"}, decode(t, rec))
}

func TestWrongMethodReturnsEnvelope(t *testing.T) {
	r := NewRouter(testConfig(), zerolog.Nop(), Options{Routes: []Routes{&pingRoutes{}}})

	rec := serve(r, http.MethodPut, "/ping", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(405), body["error"])
}

func TestRoutesGetRequestLogger(t *testing.T) {
	routes := &pingRoutes{}
	r := NewRouter(testConfig(), zerolog.New(io.Discard), Options{Routes: []Routes{routes, nil}})

	rec := serve(r, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, routes.sawRequestLogger)
}

func TestPanicIsRecovered(t *testing.T) {
	r := NewRouter(testConfig(), zerolog.Nop(), Options{Routes: []Routes{&pingRoutes{}}})

	rec := serve(r, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]interface{}{
		"success": false, "error": float64(500), "message": "Internal Server Error",
	}, decode(t, rec))
}

func TestRecovererLogsThroughRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRouter(testConfig(), zerolog.New(&buf), Options{Routes: []Routes{&pingRoutes{}}})

	serve(r, http.MethodGet, "/boom", nil)

	assert.Contains(t, buf.String(), `"message":"handler panicked"`)
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestReadyz(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	r := NewRouter(testConfig(), zerolog.Nop(), Options{Readiness: map[string]Pinger{"postgres": ok}})
	rec := serve(r, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["ready"])

	r = NewRouter(testConfig(), zerolog.Nop(), Options{Readiness: map[string]Pinger{"postgres": ok, "redis": down}})
	rec = serve(r, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ready"])
	assert.Equal(t, map[string]interface{}{"postgres": "ok", "redis": "down"}, body["checks"])
}

func TestCORS(t *testing.T) {
	r := NewRouter(testConfig(), zerolog.Nop(), Options{Routes: []Routes{&pingRoutes{}}})

	rec := serve(r, http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(r, http.MethodOptions, "/ping", map[string]string{
		"Origin":                         "http://localhost:3000",
		"Access-Control-Request-Method":  http.MethodDelete,
		"Access-Control-Request-Headers": "Content-Type",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(testConfig(), zerolog.Nop(), Options{Routes: []Routes{&pingRoutes{}}})
	serve(r, http.MethodGet, "/ping", nil)

	rec := serve(r, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `trivia_http_requests_total{method="GET",route="/ping",status="200"}`)
}

func TestNewHTTPServer(t *testing.T) {
	srv := NewHTTPServer(testConfig(), zerolog.Nop(), Options{})

	assert.Equal(t, "127.0.0.1:0", srv.Addr)
	assert.NotNil(t, srv.Handler)
}
