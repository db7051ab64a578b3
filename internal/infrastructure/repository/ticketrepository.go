package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/mappers"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// assigned_to and closed_at may be cleared, so they are always written.
	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("status", "priority", "category", "assigned_to", "closed_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when the stored values are identical.
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketMessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket messages: %w", err)
	}
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var thread []models.TicketMessageModel
	if err := tx.
		Where("ticket_id = ?", id).
		Order("created_at ASC, id ASC").
		Find(&thread).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket messages: %w", err)
	}
	return r.mapper.ToDomain(&model, thread)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	return r.list(ctx, db.GetTxFromContext(ctx, r.db))
}

func (r *TicketRepository) ListByRequester(ctx context.Context, requesterID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, db.GetTxFromContext(ctx, r.db).Where("requester_id = ?", requesterID))
}

func (r *TicketRepository) list(_ context.Context, query *gorm.DB) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	if err := query.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	out := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := r.mapper.ToDomain(&list[i], nil)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TicketRepository) AddMessage(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to add ticket message: %w", err)
	}
	return m.SetID(model.ID)
}
