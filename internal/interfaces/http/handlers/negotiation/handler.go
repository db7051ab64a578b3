package negotiation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/utils"
)

type NegotiationHandler struct {
	listProposalsUC usecases.ListProposalsExecutor
	proposeUC       usecases.ProposeScheduleExecutor
	respondUC       usecases.RespondToProposalExecutor
	deleteUC        usecases.DeleteProposalExecutor
	logger          logger.Interface
}

func NewNegotiationHandler(
	listProposalsUC usecases.ListProposalsExecutor,
	proposeUC usecases.ProposeScheduleExecutor,
	respondUC usecases.RespondToProposalExecutor,
	deleteUC usecases.DeleteProposalExecutor,
	logger logger.Interface,
) *NegotiationHandler {
	return &NegotiationHandler{
		listProposalsUC: listProposalsUC,
		proposeUC:       proposeUC,
		respondUC:       respondUC,
		deleteUC:        deleteUC,
		logger:          logger,
	}
}

// ListProposals handles GET /bookings/:id/schedule-negotiations
// An optional ?visible=N overrides how many proposals each installer group shows.
func (h *NegotiationHandler) ListProposals(c *gin.Context) {
	actor, bookingID, ok := actorAndID(c, "booking")
	if !ok {
		return
	}

	query := usecases.ListProposalsQuery{
		BookingID: bookingID,
		Actor:     actor,
	}
	if raw := c.Query("visible"); raw != "" {
		var visible struct {
			N int `form:"visible" binding:"min=1,max=50"`
		}
		if err := c.ShouldBindQuery(&visible); err != nil {
			utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
			return
		}
		query.VisiblePerGroup = visible.N
	}

	result, err := h.listProposalsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ProposeSchedule handles POST /bookings/:id/schedule-negotiations
func (h *NegotiationHandler) ProposeSchedule(c *gin.Context) {
	actor, bookingID, ok := actorAndID(c, "booking")
	if !ok {
		return
	}

	var req ProposeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for propose schedule", "error", err, "booking_id", bookingID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.proposeUC.Execute(c.Request.Context(), usecases.ProposeScheduleCommand{
		BookingID: bookingID,
		Actor:     actor,
		Date:      req.ProposedDate,
		TimeSlot:  req.TimeSlot,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Message:   req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Schedule proposed")
}

// RespondToProposal handles PATCH /schedule-negotiations/:id
func (h *NegotiationHandler) RespondToProposal(c *gin.Context) {
	actor, proposalID, ok := actorAndID(c, "proposal")
	if !ok {
		return
	}

	var req RespondToProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for respond to proposal", "error", err, "proposal_id", proposalID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.respondUC.Execute(c.Request.Context(), usecases.RespondToProposalCommand{
		ProposalID: proposalID,
		Actor:      actor,
		Outcome:    req.Outcome(),
		Message:    req.ResponseMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Proposal "+req.Status, result)
}

// DeleteProposal handles DELETE /schedule-negotiations/:id
func (h *NegotiationHandler) DeleteProposal(c *gin.Context) {
	actor, proposalID, ok := actorAndID(c, "proposal")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteProposalCommand{
		ProposalID: proposalID,
		Actor:      actor,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Proposal deleted", nil)
}

func actorAndID(c *gin.Context, entity string) (authorization.Actor, uint, bool) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return authorization.Actor{}, 0, false
	}
	id, err := utils.ParseUintParam(c, "id", entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return authorization.Actor{}, 0, false
	}
	return actor, id, true
}
