package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/logger"
	"ticket-service/internal/middleware"
	"ticket-service/internal/session"
	"ticket-service/internal/ticket"
	"ticket-service/internal/user"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates for the Gin HTML
// renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

type Handler struct {
	users        user.Store
	tickets      ticket.Store
	sessionStore session.Store
}

func NewHandler(
	users user.Store,
	tickets ticket.Store,
	sessionStore session.Store,
) *Handler {
	return &Handler{
		users:        users,
		tickets:      tickets,
		sessionStore: sessionStore,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	r.GET("/", h.Home)

	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)

	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// Deliberately outside the auth group; see the API handler.
	r.GET("/api/tickets", h.APITickets)

	protected := r.Group("/")
	protected.Use(auth.RequireAuth())
	protected.GET("/tickets", h.Tickets)
	protected.GET("/buy_ticket/:id", h.BuyTicket)
}

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", gin.H{})
}

// flash queues a one-shot message for the next rendered page.
// Best-effort: a failed push loses the notice, never the request.
func (h *Handler) flash(c *gin.Context, category, text string) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return
	}

	err := h.sessionStore.PushFlash(c.Request.Context(), sess.SessionID, session.Flash{
		Category: category,
		Text:     text,
	})
	if err != nil {
		logger.Error("flash push failed", map[string]any{
			"error": err.Error(),
		})
	}
}

// render drains pending flashes into the template data and renders
// the named page.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	sess := middleware.SessionFromContext(c)

	if sess != nil {
		flashes, err := h.sessionStore.DrainFlashes(c.Request.Context(), sess.SessionID)
		if err != nil {
			logger.Error("flash drain failed", map[string]any{
				"error": err.Error(),
			})
		}
		data["Flashes"] = flashes
		data["Username"] = sess.Username
	}

	c.HTML(status, name, data)
}
