package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

var (
	admin     = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin, Email: "ops@tradesbook.ie"}
	requester = authorization.Actor{UserID: 42, Role: authorization.RoleCustomer, Email: "mary@example.ie", Name: "Mary"}
	other     = authorization.Actor{UserID: 43, Role: authorization.RoleInstaller}
)

type mockTicketRepository struct {
	CreateFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context) ([]*ticket.Ticket, error)
	ListByRequesterFunc func(ctx context.Context, requesterID uint) ([]*ticket.Ticket, error)
	AddMessageFunc      func(ctx context.Context, m *ticket.Message) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByRequester(ctx context.Context, requesterID uint) ([]*ticket.Ticket, error) {
	if m.ListByRequesterFunc != nil {
		return m.ListByRequesterFunc(ctx, requesterID)
	}
	return nil, nil
}

func (m *mockTicketRepository) AddMessage(ctx context.Context, msg *ticket.Message) error {
	if m.AddMessageFunc != nil {
		return m.AddMessageFunc(ctx, msg)
	}
	return msg.SetID(99)
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TB-20261015-0001", nil
}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockPublisher struct {
	events []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.events = append(m.events, evts...)
	return nil
}

func newTestTicket(id uint, status vo.TicketStatus, priority vo.Priority, subject, body, email string) *ticket.Ticket {
	now := time.Now().UTC()
	t, err := ticket.ReconstructTicket(
		id, fmt.Sprintf("TB-20261001-%04d", id), subject, body,
		vo.CategoryBooking, priority, status,
		ticket.Requester{UserID: requester.UserID, Email: email, Name: requester.Name},
		nil, now, now, nil, nil,
	)
	if err != nil {
		panic(err)
	}
	return t
}

func repoWithTicket(t *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
		if id != t.ID() {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return t, nil
	}}
}
