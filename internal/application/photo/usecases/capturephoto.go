package usecases

import (
	"context"
	stderrors "errors"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type CapturePhotoCommand struct {
	BookingID uint
	Actor     authorization.Actor
	TVIndex   int
	PhotoType string
	Source    string
	Image     string
}

type CapturePhotoUseCase struct {
	loader     trackerLoader
	photoRepo  photo.Repository
	imageStore ImageStore
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewCapturePhotoUseCase(
	bookingRepo booking.Repository,
	photoRepo photo.Repository,
	imageStore ImageStore,
	txRunner TransactionRunner,
	logger logger.Interface,
) *CapturePhotoUseCase {
	return &CapturePhotoUseCase{
		loader:     trackerLoader{bookingRepo: bookingRepo, photoRepo: photoRepo, logger: logger},
		photoRepo:  photoRepo,
		imageStore: imageStore,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *CapturePhotoUseCase) Execute(ctx context.Context, cmd CapturePhotoCommand) (*dto.PhotoProgressDTO, error) {
	uc.logger.Infow("executing capture photo use case",
		"booking_id", cmd.BookingID,
		"tv_index", cmd.TVIndex,
		"photo_type", cmd.PhotoType,
		"source", cmd.Source,
	)

	photoType, err := vo.NewPhotoType(cmd.PhotoType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	source, err := vo.NewSource(cmd.Source)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !source.AllowedFor(photoType) {
		return nil, errors.NewValidationError(photo.ErrAfterPhotoNotFromCamera.Error())
	}

	b, tracker, err := uc.loader.load(ctx, cmd.BookingID, cmd.Actor, true)
	if err != nil {
		return nil, err
	}

	url, err := uc.imageStore.Store(ctx, ImageRef{BookingID: b.ID(), TVIndex: cmd.TVIndex, PhotoType: photoType}, cmd.Image)
	if err != nil {
		if stderrors.Is(err, photo.ErrInvalidImage) {
			return nil, errors.NewValidationError(err.Error())
		}
		uc.logger.Errorw("failed to store photo", "booking_id", b.ID(), "error", err)
		return nil, errors.NewInternalError("failed to store photo")
	}

	row, err := tracker.Capture(cmd.TVIndex, photoType, url, source)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.photoRepo.UpsertProgress(txCtx, row); err != nil {
			return err
		}
		return uc.photoRepo.SaveSession(txCtx, tracker.Session())
	})
	if err != nil {
		uc.logger.Errorw("failed to save photo progress", "booking_id", b.ID(), "tv_index", cmd.TVIndex, "error", err)
		return nil, errors.NewInternalError("failed to save photo progress")
	}

	cursor := tracker.Session().Cursor()
	uc.logger.Infow("photo captured",
		"booking_id", b.ID(),
		"tv_index", cmd.TVIndex,
		"photo_type", photoType,
		"next_tv_index", cursor.TVIndex,
		"next_photo_type", cursor.PhotoType,
	)
	return dto.ToPhotoProgressDTO(tracker, b.PhotosSubmittedAt()), nil
}
