package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type GetProgressQuery struct {
	BookingID uint
	Actor     authorization.Actor
}

type GetProgressUseCase struct {
	loader trackerLoader
}

func NewGetProgressUseCase(bookingRepo booking.Repository, photoRepo photo.Repository, logger logger.Interface) *GetProgressUseCase {
	return &GetProgressUseCase{
		loader: trackerLoader{bookingRepo: bookingRepo, photoRepo: photoRepo, logger: logger},
	}
}

func (uc *GetProgressUseCase) Execute(ctx context.Context, query GetProgressQuery) (*dto.PhotoProgressDTO, error) {
	b, tracker, err := uc.loader.load(ctx, query.BookingID, query.Actor, false)
	if err != nil {
		return nil, err
	}
	return dto.ToPhotoProgressDTO(tracker, b.PhotosSubmittedAt()), nil
}
