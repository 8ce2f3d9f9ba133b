package httpgin

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/validation"
)

// @Summary   List tickets
// @Tags      ticket
// @Security  Bearer
// @Success   200  {object}  Envelope{body=[]TicketResponse}
// @Failure   403  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/ticket/ [get]
func (h *handlers) listTickets(c *gin.Context) {
	tickets, err := h.svcs.Tickets.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toTicketResponses(tickets))
}

// @Summary   Get ticket
// @Tags      ticket
// @Security  Bearer
// @Param     id  path  int  true  "Ticket ID"
// @Success   200  {object}  Envelope{body=TicketResponse}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/ticket/{id} [get]
func (h *handlers) getTicket(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	t, err := h.svcs.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toTicketResponse(t))
}

// @Summary   Open a ticket on a free lot (idempotent)
// @Tags      ticket
// @Security  Bearer
// @Param     Idempotency-Key  header  string         false  "replay protection"
// @Param     req              body    TicketRequest  false  "optional start"
// @Header    201  {string}  Idempotency-Key  "echo"
// @Success   201  {object}  Envelope{body=TicketResponse}
// @Failure   400  {object}  Envelope{body=ErrorBody}  "no free lot"
// @Failure   409  {object}  Envelope{body=ErrorBody}  "idempotency key in progress"
// @Router    /api/v1/ticket/ [post]
func (h *handlers) createTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondErr(c, validation.FromBinding(err))
		return
	}

	idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	var idemStorageKey string
	if h.idem != nil && idemKey != "" {
		var userID int64
		if p, ok := security.PrincipalFrom(c.Request.Context()); ok {
			userID = p.UserID
		}
		idemStorageKey = redisrepo.KeyIdemTicket(userID, idemKey)

		state, payload, err := h.idem.Begin(c.Request.Context(), idemStorageKey)
		if err != nil {
			respondErr(c, err)
			return
		}

		switch state {
		case redisrepo.IdemReplay:
			c.Header("Idempotency-Key", idemKey)
			respond(c, http.StatusCreated, json.RawMessage(payload))
			return
		case redisrepo.IdemInProgress:
			respondErr(c, errIdempotencyInProgress)
			return
		}
	}

	t, err := h.svcs.Tickets.Create(c.Request.Context(), req.Start)
	if err != nil {
		if idemStorageKey != "" {
			if rerr := h.idem.Release(c.Request.Context(), idemStorageKey); rerr != nil {
				h.logger.Warn("release idempotency key",
					slog.String("key", idemStorageKey), slog.Any("err", rerr))
			}
		}
		respondErr(c, err)
		return
	}

	resp := toTicketResponse(t)

	if idemStorageKey != "" {
		b, err := json.Marshal(resp)
		if err == nil {
			err = h.idem.Save(c.Request.Context(), idemStorageKey, string(b))
		}
		if err != nil {
			// the lock expires on its own; a retry after that opens a new ticket
			h.logger.Error("save idempotent response",
				slog.String("key", idemStorageKey), slog.Int64("ticket_id", t.ID), slog.Any("err", err))
		}
		c.Header("Idempotency-Key", idemKey)
	}

	respond(c, http.StatusCreated, resp)
}

// @Summary   End a parking session
// @Tags      ticket
// @Security  Bearer
// @Param     id  path  int  true  "Ticket ID"
// @Success   200  {object}  Envelope{body=TicketResponse}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/ticket/{id}/end [get]
func (h *handlers) endTicket(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	t, err := h.svcs.Tickets.End(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toTicketResponse(t))
}

// @Summary   Pay an ended ticket
// @Tags      ticket
// @Security  Bearer
// @Param     id  path  int  true  "Ticket ID"
// @Success   200  {object}  Envelope{body=TicketResponse}
// @Failure   400  {object}  Envelope{body=ErrorBody}  "not ended / expired / already paid"
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/ticket/{id}/paid [get]
func (h *handlers) payTicket(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	t, err := h.svcs.Tickets.Paid(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toTicketResponse(t))
}

// @Summary   Update a ticket (fields left out keep their value)
// @Tags      ticket
// @Security  Bearer
// @Param     id   path  int            true  "Ticket ID"
// @Param     req  body  TicketRequest  true  "ticket"
// @Success   200  {object}  Envelope{body=TicketResponse}
// @Failure   400  {object}  Envelope{body=ErrorBody}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/ticket/{id} [put]
func (h *handlers) updateTicket(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	t, err := h.svcs.Tickets.Update(c.Request.Context(), id, ticketPatch(req))
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toTicketResponse(t))
}

// @Summary   Delete ticket
// @Tags      ticket
// @Security  Bearer
// @Param     id  path  int  true  "Ticket ID"
// @Success   200  {object}  Envelope{body=string}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/ticket/{id} [delete]
func (h *handlers) deleteTicket(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.svcs.Tickets.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "Ticket deleted successfully")
}
