package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/mappers"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

type ProposalRepository struct {
	db     *gorm.DB
	mapper mappers.ProposalMapper
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{
		db:     db,
		mapper: mappers.NewProposalMapper(),
	}
}

func (r *ProposalRepository) Create(ctx context.Context, p *negotiation.ScheduleProposal) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create schedule proposal: %w", err)
	}
	return p.SetID(model.ID)
}

// Update writes only the response side of a proposal.
func (r *ProposalRepository) Update(ctx context.Context, p *negotiation.ScheduleProposal) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ScheduleProposalModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"status":           model.Status,
			"response_message": model.ResponseMessage,
			"responded_at":     model.RespondedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update schedule proposal: %w", result.Error)
	}

	// RowsAffected may be 0 when the stored values are identical.
	return nil
}

func (r *ProposalRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ScheduleProposalModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete schedule proposal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("proposal not found")
	}
	return nil
}

func (r *ProposalRepository) GetByID(ctx context.Context, id uint) (*negotiation.ScheduleProposal, error) {
	var model models.ScheduleProposalModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("proposal not found")
		}
		return nil, fmt.Errorf("failed to get schedule proposal: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ProposalRepository) ListByBooking(ctx context.Context, bookingID uint) ([]*negotiation.ScheduleProposal, error) {
	var list []models.ScheduleProposalModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("booking_id = ?", bookingID).
		Order("proposed_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedule proposals: %w", err)
	}
	return r.mapper.ToDomainList(list)
}
