package photo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/utils"
)

// PhotoHandler serves the installer's before/after photo workflow.
type PhotoHandler struct {
	getProgressUC  usecases.GetProgressExecutor
	captureUC      usecases.CapturePhotoExecutor
	deletePhotoUC  usecases.DeletePhotoExecutor
	submitPhotosUC usecases.SubmitPhotosExecutor
	logger         logger.Interface
}

func NewPhotoHandler(
	getProgressUC usecases.GetProgressExecutor,
	captureUC usecases.CapturePhotoExecutor,
	deletePhotoUC usecases.DeletePhotoExecutor,
	submitPhotosUC usecases.SubmitPhotosExecutor,
	logger logger.Interface,
) *PhotoHandler {
	return &PhotoHandler{
		getProgressUC:  getProgressUC,
		captureUC:      captureUC,
		deletePhotoUC:  deletePhotoUC,
		submitPhotosUC: submitPhotosUC,
		logger:         logger,
	}
}

// GetProgress handles GET /installer/photo-progress/:bookingId
func (h *PhotoHandler) GetProgress(c *gin.Context) {
	actor, bookingID, ok := actorAndBooking(c)
	if !ok {
		return
	}

	result, err := h.getProgressUC.Execute(c.Request.Context(), usecases.GetProgressQuery{
		BookingID: bookingID,
		Actor:     actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CapturePhoto handles POST /installer/photo-progress/:bookingId
func (h *PhotoHandler) CapturePhoto(c *gin.Context) {
	actor, bookingID, ok := actorAndBooking(c)
	if !ok {
		return
	}

	var req CapturePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for capture photo", "error", err, "booking_id", bookingID)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.captureUC.Execute(c.Request.Context(), usecases.CapturePhotoCommand{
		BookingID: bookingID,
		Actor:     actor,
		TVIndex:   *req.TVIndex,
		PhotoType: req.PhotoType,
		Source:    req.Source,
		Image:     req.Image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo saved", result)
}

// DeletePhoto handles DELETE /installer/photo-progress/:bookingId/:tvIndex/:photoType
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	actor, bookingID, ok := actorAndBooking(c)
	if !ok {
		return
	}
	tvIndex, err := utils.ParseIntParam(c, "tvIndex")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deletePhotoUC.Execute(c.Request.Context(), usecases.DeletePhotoCommand{
		BookingID: bookingID,
		Actor:     actor,
		TVIndex:   tvIndex,
		PhotoType: c.Param("photoType"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo removed", result)
}

// SubmitPhotos handles POST /installer/upload-before-after-photos
func (h *PhotoHandler) SubmitPhotos(c *gin.Context) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit photos", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.submitPhotosUC.Execute(c.Request.Context(), usecases.SubmitPhotosCommand{
		BookingID: req.BookingID,
		Actor:     actor,
		Photos:    req.toPhotos(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photos submitted", result)
}

func actorAndBooking(c *gin.Context) (authorization.Actor, uint, bool) {
	actor, err := authorization.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return authorization.Actor{}, 0, false
	}
	bookingID, err := utils.ParseUintParam(c, "bookingId", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return authorization.Actor{}, 0, false
	}
	return actor, bookingID, true
}
