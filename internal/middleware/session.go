package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/logger"
	"ticket-service/internal/session"
)

// gin context key for the request's session; prefixed to avoid
// clashing with handler-set keys
const sessionContextKey = "ticket-service/session"

// SessionFromContext extracts the request's session. The Sessions
// middleware guarantees it is set on every request it saw.
func SessionFromContext(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

type SessionMiddleware struct {
	Store  session.Store
	Secret []byte
	Secure bool
}

func NewSessionMiddleware(store session.Store, secret []byte, secure bool) *SessionMiddleware {
	return &SessionMiddleware{Store: store, Secret: secret, Secure: secure}
}

// Load attaches a live session to every request, creating an anonymous
// one when the client has none. Anonymous sessions exist so flash
// messages survive redirects before login.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.resume(c)

		if sess == nil {
			sess = m.begin(c)
		}

		if sess != nil {
			c.Set(sessionContextKey, sess)
		}

		c.Next()
	}
}

// resume loads the session referenced by a valid signed cookie, or
// returns nil when there is nothing to resume.
func (m *SessionMiddleware) resume(c *gin.Context) *session.Session {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// A forged or truncated cookie is the same as no cookie.
	sessionID, ok := session.VerifyValue(cookie.Value, m.Secret)
	if !ok {
		return nil
	}

	sess, err := m.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("session load failed", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if sess == nil {
		return nil
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.Store.Delete(c.Request.Context(), sessionID)
		return nil
	}

	return sess
}

// begin creates a fresh anonymous session and issues its cookie.
func (m *SessionMiddleware) begin(c *gin.Context) *session.Session {
	sessionID, err := session.GenerateID()
	if err != nil {
		logger.Error("session id generation failed", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	sess := &session.Session{
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(session.TTL),
	}

	if err := m.Store.Create(c.Request.Context(), *sess); err != nil {
		logger.Error("session create failed", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	session.SetCookie(c.Writer, sessionID, m.Secret, sess.ExpiresAt, session.CookieOptions{
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}
