package security

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// OriginList is the CORS allow-list; it can be swapped on config reload.
type OriginList struct {
	mu      sync.RWMutex
	origins map[string]bool
}

func NewOriginList(origins []string) *OriginList {
	l := &OriginList{}
	l.Set(origins)
	return l
}

func (l *OriginList) Set(origins []string) {
	set := make(map[string]bool, len(origins))
	for _, o := range origins {
		set[o] = true
	}
	l.mu.Lock()
	l.origins = set
	l.mu.Unlock()
}

func (l *OriginList) Allowed(origin string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.origins[origin]
}

// CORS only echoes origins on the allow-list, with credentials.
func CORS(allowed *OriginList) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && allowed.Allowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, PUT, PATCH, POST, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure sets the usual hardening headers.
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		// no MIME sniffing
		c.Header("X-Content-Type-Options", "nosniff")
		// no framing
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		// HSTS
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	gen      int
}

// RateLimit limits requests per client IP. SetLimit may be called while
// serving; each visitor picks the new limit up on its next request.
type RateLimit struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	interval time.Duration
	gen      int
}

// NewRateLimit allows maxRequests per window and bursts of the same size.
// A non-positive maxRequests or window disables limiting.
func NewRateLimit(maxRequests int, window time.Duration) *RateLimit {
	l := &RateLimit{visitors: make(map[string]*visitor)}
	l.SetLimit(maxRequests, window)
	return l
}

func (l *RateLimit) SetLimit(maxRequests int, window time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if maxRequests <= 0 || window <= 0 {
		l.limit, l.burst, l.interval = rate.Inf, 0, 0
		return
	}
	l.interval = window / time.Duration(maxRequests)
	l.limit = rate.Every(l.interval)
	l.burst = maxRequests
}

// Evict drops visitors idle for longer than idle and returns how many went.
func (l *RateLimit) Evict(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for ip, v := range l.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(l.visitors, ip)
			n++
		}
	}
	return n
}

// Run evicts idle visitors every minute until ctx is done.
func (l *RateLimit) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Evict(3 * time.Minute)
		}
	}
}

func (l *RateLimit) visitor(key string) (*rate.Limiter, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst), gen: l.gen}
		l.visitors[key] = v
	} else if v.gen != l.gen {
		v.limiter.SetLimit(l.limit)
		v.limiter.SetBurst(l.burst)
		v.gen = l.gen
	}
	v.lastSeen = time.Now()
	return v.limiter, l.interval
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// hint of one refill interval.
func (l *RateLimit) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter, interval := l.visitor(c.ClientIP())
		if !limiter.Allow() {
			retry := int(math.Ceil(interval.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Muitas requisições, tente novamente em instantes"})
			return
		}

		c.Next()
	}
}
