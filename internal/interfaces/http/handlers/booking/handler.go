package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/application/booking/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/utils"
)

type CreateBookingRequest struct {
	CustomerID         uint   `json:"customer_id" binding:"required"`
	InstallerID        uint   `json:"installer_id" binding:"required"`
	TVCount            int    `json:"tv_count" binding:"required,min=1,max=20"`
	PhotoWorkflowStage string `json:"photo_workflow_stage" binding:"omitempty,oneof=before after both"`
}

type BookingHandler struct {
	createBookingUC usecases.CreateBookingExecutor
	getBookingUC    usecases.GetBookingExecutor
	logger          logger.Interface
}

func NewBookingHandler(
	createBookingUC usecases.CreateBookingExecutor,
	getBookingUC usecases.GetBookingExecutor,
	logger logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		createBookingUC: createBookingUC,
		getBookingUC:    getBookingUC,
		logger:          logger,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create booking", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.createBookingUC.Execute(c.Request.Context(), usecases.CreateBookingCommand{
		Actor:              actor,
		CustomerID:         req.CustomerID,
		InstallerID:        req.InstallerID,
		TVCount:            req.TVCount,
		PhotoWorkflowStage: req.PhotoWorkflowStage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Booking created successfully")
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	bookingID, err := utils.ParseUintParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getBookingUC.Execute(c.Request.Context(), usecases.GetBookingQuery{
		BookingID: bookingID,
		Actor:     actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
