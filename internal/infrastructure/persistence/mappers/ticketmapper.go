package mappers

import (
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket to a persistence model. Messages are not included.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket row and its thread rows to a domain entity.
	ToDomain(model *models.TicketModel, messages []models.TicketMessageModel) (*ticket.Ticket, error)

	MessageToModel(m *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) *ticket.Message
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	requester := t.Requester()
	return &models.TicketModel{
		ID:             t.ID(),
		Number:         t.Number(),
		Subject:        t.Subject(),
		Body:           t.Body(),
		Category:       t.Category().String(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		RequesterID:    requester.UserID,
		RequesterEmail: requester.Email,
		RequesterName:  requester.Name,
		AssignedTo:     t.AssignedTo(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
		ClosedAt:       timePtrToMillis(t.ClosedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, messages []models.TicketMessageModel) (*ticket.Ticket, error) {
	thread := make([]*ticket.Message, 0, len(messages))
	for i := range messages {
		thread = append(thread, m.MessageToDomain(&messages[i]))
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		model.Body,
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		ticket.Requester{
			UserID: model.RequesterID,
			Email:  model.RequesterEmail,
			Name:   model.RequesterName,
		},
		model.AssignedTo,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		millisPtrToTime(model.ClosedAt),
		thread,
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:           msg.ID(),
		TicketID:     msg.TicketID(),
		AuthorID:     msg.AuthorID(),
		Body:         msg.Body(),
		IsAdminReply: msg.IsAdminReply(),
		CreatedAt:    msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) *ticket.Message {
	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		model.IsAdminReply,
		millisToTime(model.CreatedAt),
	)
}
