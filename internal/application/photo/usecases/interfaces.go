package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/dto"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImageRef identifies the slot an image is stored for.
type ImageRef struct {
	BookingID uint
	TVIndex   int
	PhotoType vo.PhotoType
}

// ImageStore turns an uploaded payload (a data URL or raw base64) into a
// stored photo reference. Non-image payloads fail with photo.ErrInvalidImage.
type ImageStore interface {
	Store(ctx context.Context, ref ImageRef, payload string) (string, error)
}

type GetProgressExecutor interface {
	Execute(ctx context.Context, query GetProgressQuery) (*dto.PhotoProgressDTO, error)
}

type CapturePhotoExecutor interface {
	Execute(ctx context.Context, cmd CapturePhotoCommand) (*dto.PhotoProgressDTO, error)
}

type DeletePhotoExecutor interface {
	Execute(ctx context.Context, cmd DeletePhotoCommand) (*dto.PhotoProgressDTO, error)
}

type SubmitPhotosExecutor interface {
	Execute(ctx context.Context, cmd SubmitPhotosCommand) (*dto.SubmissionDTO, error)
}
