package web

import (
	"sync"
	"time"

	"blogreader/internal/adapters/session"
	"blogreader/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const sessionCookie = "reader_session"

const sessionLocal = "session"

// SessionMiddleware resolves the browser session: it reads (or mints) the
// session cookie, loads the stored credential and exposes the resulting
// capability via CurrentSession. Credential lookup failures degrade to an
// anonymous session rather than blocking the page.
func SessionMiddleware(sessions session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(sessionCookie)
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		token, err := sessions.Token(c.UserContext(), sessionID)
		if err != nil {
			log.WarnCtx(c.UserContext(), "session lookup failed, continuing anonymous", "error", err)
			token = ""
		}

		c.Locals(sessionLocal, session.Resume(sessionID, token))
		return c.Next()
	}
}

// CurrentSession returns the session resolved by SessionMiddleware, or an
// anonymous one when the middleware did not run.
func CurrentSession(c *fiber.Ctx) session.Session {
	sess, ok := c.Locals(sessionLocal).(session.Session)
	if !ok {
		return session.Session{}
	}
	return sess
}

// RequestIDConfig returns the configuration for Fiber's requestid
// middleware. Uses X-Request-ID, generating one if absent.
func RequestIDConfig() requestid.Config {
	return requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: "requestid",
	}
}

// RequestIDToContextMiddleware bridges Fiber's requestid into pkg/log
// context. Must run after requestid.New().
func RequestIDToContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			c.SetUserContext(log.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

// RequestLoggerMiddleware logs each request as one structured entry.
func RequestLoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.IP(),
		}
		if err != nil {
			fields = append(fields, "error", err.Error())
		}

		ctx := c.UserContext()
		switch {
		case status >= 500:
			log.ErrorCtx(ctx, "request completed", fields...)
		case status >= 400:
			log.WarnCtx(ctx, "request completed", fields...)
		default:
			log.InfoCtx(ctx, "request completed", fields...)
		}
		return err
	}
}

// RateLimiter throttles mutation endpoints per client IP using token
// buckets. Idle clients are dropped by a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateClient
	rps     rate.Limit
	burst   int
}

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst per IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rateClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go rl.sweep()
	return rl
}

// Middleware returns the Fiber handler enforcing the limit.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(fiber.Map{"message": "Too many requests. Please wait a moment and try again."})
		}
		return c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[ip]
	if !ok {
		client = &rateClient{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		rl.mu.Lock()
		for ip, client := range rl.clients {
			if client.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
