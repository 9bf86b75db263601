package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/logger"
	"ticket-service/internal/ticket"
)

func (h *Handler) Tickets(c *gin.Context) {
	tickets, err := h.tickets.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("ticket list failed", map[string]any{
			"error": err.Error(),
		})
		h.flash(c, "danger", "Could not load tickets")
	}

	h.render(c, http.StatusOK, "tickets.html", gin.H{
		"Tickets": tickets,
	})
}

// APITickets serves the catalog as JSON. It is intentionally not
// behind the auth gate: the HTML listing is, and whether the two
// should match is an open product question, so the original shape is
// preserved.
func (h *Handler) APITickets(c *gin.Context) {
	tickets, err := h.tickets.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("ticket list failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to load tickets",
		})
		return
	}

	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	c.JSON(http.StatusOK, tickets)
}

// BuyTicket is flash-only: no inventory is decremented and nothing is
// persisted. Malformed ids, missing tickets and storage faults all
// collapse into the same user-facing outcome.
func (h *Handler) BuyTicket(c *gin.Context) {
	id := c.Param("id")

	t, err := h.tickets.FindByID(c.Request.Context(), id)
	if err != nil {
		h.flash(c, "danger", "Ticket could not be found")
		c.Redirect(http.StatusFound, "/tickets")
		return
	}

	h.flash(c, "success", fmt.Sprintf("Successfully purchased ticket %q", t.Title))
	c.Redirect(http.StatusFound, "/tickets")
}
