package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/user"
)

func (h *Handler) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{})
}

func (h *Handler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == "" || password == "" {
		h.flash(c, "danger", "Please fill in all fields")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := user.HashPassword(password)
	if err != nil {
		h.flash(c, "danger", "Registration failed, please try again")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	// The unique constraint on username decides the duplicate case;
	// no pre-check, so concurrent registrations can't both win.
	_, err = h.users.Create(c.Request.Context(), username, hash)
	if errors.Is(err, user.ErrDuplicateUsername) {
		h.flash(c, "danger", "Username already taken")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if err != nil {
		h.flash(c, "danger", "Registration failed, please try again")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	h.flash(c, "success", "Registration successful, you can now log in")
	c.Redirect(http.StatusFound, "/login")
}
