package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRateLimitStore: счётчики в памяти вместо Redis
type fakeRateLimitStore struct {
	mu       sync.Mutex
	counters map[string]int64
	err      error
	ttlErr   error
}

func newFakeRateLimitStore() *fakeRateLimitStore {
	return &fakeRateLimitStore{counters: make(map[string]int64)}
}

func (s *fakeRateLimitStore) Incr(_ context.Context, key string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return redis.NewIntResult(0, s.err)
	}
	s.counters[key]++
	return redis.NewIntResult(s.counters[key], nil)
}

func (s *fakeRateLimitStore) Expire(_ context.Context, _ string, _ time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (s *fakeRateLimitStore) TTL(_ context.Context, _ string) *redis.DurationCmd {
	if s.ttlErr != nil {
		return redis.NewDurationResult(0, s.ttlErr)
	}
	return redis.NewDurationResult(30*time.Second, nil)
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestExtractUintParam(t *testing.T) {
	r := gin.New()
	r.GET("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.MustGet("questionID").(uint)})
	})

	w := serve(r, http.MethodGet, "/questions/42")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())

	for _, bad := range []string{"abc", "-1", "1.5"} {
		w = serve(r, http.MethodGet, "/questions/"+bad)
		assert.Equal(t, http.StatusNotFound, w.Code, "id=%s", bad)
		assert.JSONEq(t, `{"success":false,"error":404,"message":"resource not found"}`, w.Body.String())
	}
}

func TestResponseHeaders(t *testing.T) {
	r := gin.New()
	r.Use(ResponseHeaders())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/ping")

	assert.Equal(t, "Content-Type,Authorization,true", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightKeepsExactHeaders(t *testing.T) {
	r := gin.New()
	r.Use(ResponseHeaders(), CORS())
	r.POST("/api/questions", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, []string{"Content-Type,Authorization,true"}, w.Header().Values("Access-Control-Allow-Headers"))
	assert.Equal(t, []string{"GET,PUT,POST,DELETE,OPTIONS"}, w.Header().Values("Access-Control-Allow-Methods"))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, http.MethodGet, "/ping")
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36, "должен сгенерироваться UUID")
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-id-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-id-1", w.Header().Get(RequestIDHeader), "входящий id должен сохраняться")
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":500,"message":"internal server error"}`, w.Body.String())
}

func TestMetrics_CountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := gin.New()
	r.Use(m.Handler())
	r.GET("/questions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/questions/1")
	serve(r, http.MethodGet, "/questions/2")
	serve(r, http.MethodGet, "/missing")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/questions/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("unmatched", "GET", "404")))
}

func TestRateLimiter_Limit(t *testing.T) {
	store := newFakeRateLimitStore()
	limiter := NewRateLimiter(store, zap.NewNop())
	r := gin.New()
	r.POST("/questions", limiter.Limit(RateLimitConfig{MaxRequests: 2, Window: time.Minute, KeyPrefix: "rl:test"}),
		func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/questions").Code)
	w := serve(r, http.MethodPost, "/questions")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = serve(r, http.MethodPost, "/questions")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"error":429,"message":"too many requests"}`, w.Body.String())
}

func TestRateLimiter_FailOpen(t *testing.T) {
	store := newFakeRateLimitStore()
	store.err = errors.New("redis: connection refused")
	limiter := NewRateLimiter(store, zap.NewNop())
	r := gin.New()
	r.POST("/questions", limiter.Limit(RateLimitConfig{MaxRequests: 1, Window: time.Minute, KeyPrefix: "rl:test"}),
		func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/questions").Code)
	}
}

func TestRateLimiter_TTLErrorIsLogged(t *testing.T) {
	store := newFakeRateLimitStore()
	store.ttlErr = errors.New("redis: i/o timeout")
	core, logs := observer.New(zapcore.DebugLevel)
	limiter := NewRateLimiter(store, zap.New(core))
	r := gin.New()
	r.POST("/questions", limiter.Limit(RateLimitConfig{MaxRequests: 1, Window: time.Minute, KeyPrefix: "rl:test"}),
		func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/questions").Code)
	w := serve(r, http.MethodPost, "/questions")

	// Без TTL Retry-After берётся из длины окна
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	entries := logs.FilterMessage("Не удалось получить TTL, используется длина окна").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["key"], "rl:test:")
	assert.Contains(t, entries[0].ContextMap()["key"], ":POST:/questions")
}
