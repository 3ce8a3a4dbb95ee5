package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"marketmaster/internal/security"
	"marketmaster/internal/session"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const SessionContextKey ContextKey = "lesson"

// Middleware holds dependencies for middleware functions.
type Middleware struct {
	store   *session.Store
	csrf    *security.CSRFGenerator
	limiter *security.RateLimiter
	secret  string
	ttl     time.Duration
}

// NewMiddleware creates a new middleware instance.
func NewMiddleware(store *session.Store, csrf *security.CSRFGenerator, limiter *security.RateLimiter, secret string, ttl time.Duration) *Middleware {
	return &Middleware{
		store:   store,
		csrf:    csrf,
		limiter: limiter,
		secret:  secret,
		ttl:     ttl,
	}
}

// WithSession attaches the lesson session to the request context, creating
// a fresh session and cookie on first visit or when the cookie is invalid
// or the session was reaped.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := m.lookupSession(r)
		if sess == nil {
			sess = m.store.Create()
			token, err := security.SignSessionToken(sess.ID, m.secret, m.ttl)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "signing session token", err)
				return
			}
			http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, token, time.Now().Add(m.ttl)))
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sess)
		next(w, r.WithContext(ctx))
	}
}

func (m *Middleware) lookupSession(r *http.Request) *session.LessonSession {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	id, err := security.ParseSessionToken(cookie.Value, m.secret)
	if err != nil {
		return nil
	}
	return m.store.Get(id)
}

// RateLimit throttles a handler per client IP. Used on the endpoints that
// reach the AI gateway.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			http.Error(w, ErrTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// CSRFProtect validates the csrf_token form field against the session.
// Must run inside WithSession.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		if sess == nil || !m.csrf.ValidateToken(sess.ID, r.FormValue("csrf_token")) {
			http.Error(w, ErrInvalidCSRFToken, http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// CSRFToken returns the token to embed in forms for this session.
func (m *Middleware) CSRFToken(sess *session.LessonSession) string {
	token, err := m.csrf.GenerateToken(sess.ID)
	if err != nil {
		return ""
	}
	return token
}

// Logging middleware logs HTTP requests.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetSessionFromContext retrieves the lesson session from the request
// context.
func GetSessionFromContext(ctx context.Context) *session.LessonSession {
	sess, ok := ctx.Value(SessionContextKey).(*session.LessonSession)
	if !ok {
		return nil
	}
	return sess
}
