package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/logger"
	"ticket-service/internal/middleware"
	"ticket-service/internal/user"
)

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	u, err := h.users.FindByUsername(c.Request.Context(), username)

	// A missing user and a wrong password are indistinguishable to
	// the client.
	if err != nil || !user.VerifyPassword(u.PasswordHash, password) {
		h.flash(c, "danger", "Incorrect username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess := middleware.SessionFromContext(c)
	if sess == nil {
		h.flash(c, "danger", "Login failed, please try again")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess.Username = u.Username
	if err := h.sessionStore.Update(c.Request.Context(), *sess); err != nil {
		logger.Error("session update failed", map[string]any{
			"error": err.Error(),
		})
		h.flash(c, "danger", "Login failed, please try again")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.flash(c, "success", "Logged in successfully")
	c.Redirect(http.StatusFound, "/tickets")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	// Clearing the identity keeps the session (and its flash queue)
	// alive so the goodbye message survives the redirect.
	if sess != nil && sess.Username != "" {
		sess.Username = ""
		if err := h.sessionStore.Update(c.Request.Context(), *sess); err != nil {
			logger.Error("session update failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	h.flash(c, "success", "Logged out successfully")
	c.Redirect(http.StatusFound, "/")
}
