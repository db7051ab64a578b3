package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type DeletePhotoCommand struct {
	BookingID uint
	Actor     authorization.Actor
	TVIndex   int
	PhotoType string
}

type DeletePhotoUseCase struct {
	loader    trackerLoader
	photoRepo photo.Repository
	logger    logger.Interface
}

func NewDeletePhotoUseCase(bookingRepo booking.Repository, photoRepo photo.Repository, logger logger.Interface) *DeletePhotoUseCase {
	return &DeletePhotoUseCase{
		loader:    trackerLoader{bookingRepo: bookingRepo, photoRepo: photoRepo, logger: logger},
		photoRepo: photoRepo,
		logger:    logger,
	}
}

func (uc *DeletePhotoUseCase) Execute(ctx context.Context, cmd DeletePhotoCommand) (*dto.PhotoProgressDTO, error) {
	uc.logger.Infow("executing delete photo use case",
		"booking_id", cmd.BookingID,
		"tv_index", cmd.TVIndex,
		"photo_type", cmd.PhotoType,
	)

	photoType, err := vo.NewPhotoType(cmd.PhotoType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	b, tracker, err := uc.loader.load(ctx, cmd.BookingID, cmd.Actor, true)
	if err != nil {
		return nil, err
	}

	row, err := tracker.DeletePhoto(cmd.TVIndex, photoType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.photoRepo.UpsertProgress(ctx, row); err != nil {
		uc.logger.Errorw("failed to clear photo", "booking_id", b.ID(), "tv_index", cmd.TVIndex, "error", err)
		return nil, errors.NewInternalError("failed to delete photo")
	}

	uc.logger.Infow("photo deleted", "booking_id", b.ID(), "tv_index", cmd.TVIndex, "photo_type", photoType)
	return dto.ToPhotoProgressDTO(tracker, b.PhotosSubmittedAt()), nil
}
