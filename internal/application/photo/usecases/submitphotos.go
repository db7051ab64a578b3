package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type SubmittedPhoto struct {
	TVIndex           int
	BeforePhotoURL    string
	BeforePhotoSource string
	AfterPhotoURL     string
	AfterPhotoSource  string
}

type SubmitPhotosCommand struct {
	BookingID uint
	Actor     authorization.Actor
	Photos    []SubmittedPhoto
}

type SubmitPhotosUseCase struct {
	loader      trackerLoader
	bookingRepo booking.Repository
	photoRepo   photo.Repository
	imageStore  ImageStore
	txRunner    TransactionRunner
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewSubmitPhotosUseCase(
	bookingRepo booking.Repository,
	photoRepo photo.Repository,
	imageStore ImageStore,
	txRunner TransactionRunner,
	publisher events.EventPublisher,
	logger logger.Interface,
) *SubmitPhotosUseCase {
	return &SubmitPhotosUseCase{
		loader:      trackerLoader{bookingRepo: bookingRepo, photoRepo: photoRepo, logger: logger},
		bookingRepo: bookingRepo,
		photoRepo:   photoRepo,
		imageStore:  imageStore,
		txRunner:    txRunner,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *SubmitPhotosUseCase) Execute(ctx context.Context, cmd SubmitPhotosCommand) (*dto.SubmissionDTO, error) {
	uc.logger.Infow("executing submit photos use case", "booking_id", cmd.BookingID, "photos", len(cmd.Photos))

	if len(cmd.Photos) == 0 {
		return nil, errors.NewValidationError("at least one photo entry is required")
	}

	b, tracker, err := uc.loader.load(ctx, cmd.BookingID, cmd.Actor, true)
	if err != nil {
		return nil, err
	}

	batch, err := uc.resolveBatch(ctx, b.ID(), cmd.Photos)
	if err != nil {
		return nil, err
	}

	rows, err := tracker.ApplySubmission(batch)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	b.MarkPhotosSubmitted(biztime.NowUTC())
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, row := range rows {
			if err := uc.photoRepo.UpsertProgress(txCtx, row); err != nil {
				return err
			}
		}
		if err := uc.photoRepo.SaveSession(txCtx, tracker.Session()); err != nil {
			return err
		}
		return uc.bookingRepo.Update(txCtx, b)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist photo submission", "booking_id", b.ID(), "error", err)
		return nil, errors.NewInternalError("failed to submit photos")
	}

	batchID := uuid.NewString()
	metrics := tracker.Metrics()
	event := photo.NewPhotosSubmittedEvent(b.ID(), b.InstallerID(), batchID, b.TVCount(), metrics.QualityStars)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish photos submitted event", "booking_id", b.ID(), "error", err)
	}

	uc.logger.Infow("photos submitted",
		"booking_id", b.ID(),
		"batch_id", batchID,
		"rows", len(rows),
		"quality_stars", metrics.QualityStars,
	)
	return &dto.SubmissionDTO{
		BatchID: batchID,
		Result:  dto.ToPhotoProgressDTO(tracker, b.PhotosSubmittedAt()),
	}, nil
}

// resolveBatch validates sources and stores inline data URLs.
func (uc *SubmitPhotosUseCase) resolveBatch(ctx context.Context, bookingID uint, photos []SubmittedPhoto) ([]photo.SubmittedPhoto, error) {
	batch := make([]photo.SubmittedPhoto, 0, len(photos))
	for _, p := range photos {
		entry := photo.SubmittedPhoto{TVIndex: p.TVIndex}

		var err error
		entry.BeforeURL, entry.BeforeSource, err = uc.resolve(ctx, bookingID, p.TVIndex, vo.TypeBefore, p.BeforePhotoURL, p.BeforePhotoSource)
		if err != nil {
			return nil, err
		}
		entry.AfterURL, entry.AfterSource, err = uc.resolve(ctx, bookingID, p.TVIndex, vo.TypeAfter, p.AfterPhotoURL, p.AfterPhotoSource)
		if err != nil {
			return nil, err
		}
		batch = append(batch, entry)
	}
	return batch, nil
}

func (uc *SubmitPhotosUseCase) resolve(ctx context.Context, bookingID uint, tvIndex int, pt vo.PhotoType, url, rawSource string) (string, vo.Source, error) {
	if url == "" {
		return "", "", nil
	}
	source, err := vo.NewSource(rawSource)
	if err != nil {
		return "", "", errors.NewValidationError(err.Error())
	}
	if !strings.HasPrefix(url, "data:") {
		return url, source, nil
	}

	stored, err := uc.imageStore.Store(ctx, ImageRef{BookingID: bookingID, TVIndex: tvIndex, PhotoType: pt}, url)
	if err != nil {
		if stderrors.Is(err, photo.ErrInvalidImage) {
			return "", "", errors.NewValidationError(err.Error())
		}
		uc.logger.Errorw("failed to store photo", "booking_id", bookingID, "tv_index", tvIndex, "error", err)
		return "", "", errors.NewInternalError("failed to store photo")
	}
	return stored, source, nil
}
