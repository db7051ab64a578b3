package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/mappers"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

var (
	sessionColumns  = []string{"tv_count", "workflow_stage", "cursor_tv_index", "cursor_photo_type", "updated_at"}
	progressColumns = []string{
		"before_photo_url", "after_photo_url",
		"before_photo_source", "after_photo_source",
		"is_completed", "updated_at",
	}
)

type PhotoRepository struct {
	db     *gorm.DB
	mapper mappers.PhotoMapper
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db:     db,
		mapper: mappers.NewPhotoMapper(),
	}
}

func (r *PhotoRepository) GetSession(ctx context.Context, bookingID uint) (*photo.Session, error) {
	var model models.PhotoSessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("booking_id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("photo session not found")
		}
		return nil, fmt.Errorf("failed to get photo session: %w", err)
	}
	return r.mapper.SessionToDomain(&model)
}

// SaveSession updates a loaded session, or upserts on booking_id for a new one
// so a session created concurrently is overwritten.
func (r *PhotoRepository) SaveSession(ctx context.Context, s *photo.Session) error {
	model := r.mapper.SessionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID != 0 {
		if err := tx.Model(&models.PhotoSessionModel{}).
			Where("id = ?", model.ID).
			Select(sessionColumns).
			Updates(model).Error; err != nil {
			return fmt.Errorf("failed to save photo session: %w", err)
		}
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns(sessionColumns),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save photo session: %w", err)
	}

	var id uint
	if err := tx.Model(&models.PhotoSessionModel{}).
		Where("booking_id = ?", model.BookingID).
		Pluck("id", &id).Error; err != nil {
		return fmt.Errorf("failed to resolve photo session id: %w", err)
	}
	return s.SetID(id)
}

// ListProgress returns the booking's rows ordered by TV index.
func (r *PhotoRepository) ListProgress(ctx context.Context, bookingID uint) ([]*photo.Progress, error) {
	var list []models.PhotoProgressModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("booking_id = ?", bookingID).
		Order("tv_index ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list photo progress: %w", err)
	}

	out := make([]*photo.Progress, 0, len(list))
	for i := range list {
		p, err := r.mapper.ProgressToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PhotoRepository) UpsertProgress(ctx context.Context, p *photo.Progress) error {
	model := r.mapper.ProgressToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID != 0 {
		if err := tx.Model(&models.PhotoProgressModel{}).
			Where("id = ?", model.ID).
			Select(progressColumns).
			Updates(model).Error; err != nil {
			return fmt.Errorf("failed to update photo progress: %w", err)
		}
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "booking_id"}, {Name: "tv_index"}},
		DoUpdates: clause.AssignmentColumns(progressColumns),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert photo progress: %w", err)
	}

	var id uint
	if err := tx.Model(&models.PhotoProgressModel{}).
		Where("booking_id = ? AND tv_index = ?", model.BookingID, model.TVIndex).
		Pluck("id", &id).Error; err != nil {
		return fmt.Errorf("failed to resolve photo progress id: %w", err)
	}
	return p.SetID(id)
}
