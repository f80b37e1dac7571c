package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Riaraujo/testecrud/pkg/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler, remote string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_PerClient(t *testing.T) {
	limit := security.NewRateLimit(1, time.Minute)
	r := newRouter(limit.Middleware())

	require.Equal(t, http.StatusOK, get(r, "10.0.0.1:1000").Code)
	w := get(r, "10.0.0.1:1000")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "60", w.Header().Get("Retry-After"))

	require.Equal(t, http.StatusOK, get(r, "10.0.0.2:1000").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	limit := security.NewRateLimit(0, time.Minute)
	r := newRouter(limit.Middleware())
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, get(r, "10.0.0.1:1000").Code)
	}
}

func TestRateLimit_Evict(t *testing.T) {
	limit := security.NewRateLimit(10, time.Minute)
	r := newRouter(limit.Middleware())
	get(r, "10.0.0.1:1000")
	get(r, "10.0.0.2:1000")

	require.Equal(t, 0, limit.Evict(time.Hour))
	time.Sleep(time.Millisecond)
	require.Equal(t, 2, limit.Evict(time.Nanosecond))
}

func TestCORS(t *testing.T) {
	origins := security.NewOriginList([]string{"https://riaraujo.github.io"})
	r := newRouter(security.CORS(origins))

	w := get(r, "10.0.0.1:1000", "Origin", "https://riaraujo.github.io")
	require.Equal(t, "https://riaraujo.github.io", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = get(r, "10.0.0.1:1000", "Origin", "https://evil.example")
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	origins.Set([]string{"https://evil.example"})
	w = get(r, "10.0.0.1:1000", "Origin", "https://evil.example")
	require.Equal(t, "https://evil.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecure(t *testing.T) {
	w := get(newRouter(security.Secure()), "10.0.0.1:1000")
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	require.Empty(t, w.Header().Get("Strict-Transport-Security"))
}
