package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/application/ticket/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/utils"
)

// AdminTicketHandler serves the support desk.
type AdminTicketHandler struct {
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	replyTicketUC  usecases.ReplyTicketExecutor
	setStatusUC    usecases.SetStatusExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	logger         logger.Interface
}

func NewAdminTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	replyTicketUC usecases.ReplyTicketExecutor,
	setStatusUC usecases.SetStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	logger logger.Interface,
) *AdminTicketHandler {
	return &AdminTicketHandler{
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		replyTicketUC:  replyTicketUC,
		setStatusUC:    setStatusUC,
		deleteTicketUC: deleteTicketUC,
		logger:         logger,
	}
}

// ListTickets handles GET /admin/support/tickets?status=&priority=&search=
func (h *AdminTicketHandler) ListTickets(c *gin.Context) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor:    actor,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total)
}

// GetTicket handles GET /admin/support/tickets/:id
func (h *AdminTicketHandler) GetTicket(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReplyTicket handles POST /admin/support/tickets/:id/reply
func (h *AdminTicketHandler) ReplyTicket(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	var req ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reply ticket", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.replyTicketUC.Execute(c.Request.Context(), usecases.ReplyTicketCommand{
		TicketID:  ticketID,
		Actor:     actor,
		Message:   req.Message,
		NewStatus: req.NewStatus,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply sent", result)
}

// SetStatus handles PUT /admin/support/tickets/:id/status
func (h *AdminTicketHandler) SetStatus(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set ticket status", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), usecases.SetStatusCommand{
		TicketID:   ticketID,
		Actor:      actor,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated", result)
}

// DeleteTicket handles DELETE /admin/support/tickets/:id?confirm=true
func (h *AdminTicketHandler) DeleteTicket(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		Actor:     actor,
		Confirmed: utils.QueryBool(c, "confirm"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *AdminTicketHandler) actorAndTicket(c *gin.Context) (authorization.Actor, uint, bool) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return authorization.Actor{}, 0, false
	}
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return authorization.Actor{}, 0, false
	}
	return actor, ticketID, true
}
