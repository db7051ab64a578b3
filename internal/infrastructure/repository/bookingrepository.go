package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/mappers"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

type BookingRepository struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{
		db:     db,
		mapper: mappers.NewBookingMapper(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return b.SetID(model.ID)
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared schedule fields are written as NULL.
	result := tx.Model(&models.BookingModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}

	// RowsAffected may be 0 when the stored values are identical.
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *BookingRepository) GetByIDForUpdate(ctx context.Context, id uint) (*booking.Booking, error) {
	tx := db.GetTxFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.get(tx, id)
}

func (r *BookingRepository) get(tx *gorm.DB, id uint) (*booking.Booking, error) {
	var model models.BookingModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// ListByUser returns bookings where the user is customer or installer, newest first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID uint) ([]*booking.Booking, error) {
	var list []models.BookingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ? OR installer_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	out := make([]*booking.Booking, 0, len(list))
	for i := range list {
		b, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
