package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/session"
)

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// RequireAuth gates a route on an authenticated session. Anonymous
// visitors are never shown a 401; they get a warning flash and a
// redirect to the login page, matching every other failure path in
// the service.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)

		if sess.Authenticated() {
			c.Next()
			return
		}

		if sess != nil {
			_ = a.Store.PushFlash(c.Request.Context(), sess.SessionID, session.Flash{
				Category: "warning",
				Text:     "Please log in first",
			})
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
