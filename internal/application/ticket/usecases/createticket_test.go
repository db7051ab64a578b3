package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{CreateFunc: func(_ context.Context, tkt *ticket.Ticket) error {
		saved = tkt
		return tkt.SetID(7)
	}}
	pub := &mockPublisher{}

	uc := NewCreateTicketUseCase(repo, &mockNumberGenerator{}, pub, logger.Nop())
	out, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:    requester,
		Subject:  "  Installer never arrived ",
		Body:     "Booking for Saturday morning, nobody came.",
		Category: "booking",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), out.ID)
	assert.Equal(t, "TB-20261015-0001", out.Number)
	assert.Equal(t, "Installer never arrived", out.Subject)
	assert.Equal(t, "medium", out.Priority)
	assert.Equal(t, "open", out.Status)
	assert.Equal(t, "mary@example.ie", out.RequesterEmail)
	assert.True(t, out.FirstResponseDue.After(out.CreatedAt))
	require.NotNil(t, saved)
	require.Len(t, pub.events, 1)
	assert.Equal(t, ticket.EventTypeTicketCreated, pub.events[0].GetEventType())
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing subject", CreateTicketCommand{Actor: requester, Body: "b", Category: "other"}},
		{"missing body", CreateTicketCommand{Actor: requester, Subject: "s", Category: "other"}},
		{"bad category", CreateTicketCommand{Actor: requester, Subject: "s", Body: "b", Category: "billing"}},
		{"bad priority", CreateTicketCommand{Actor: requester, Subject: "s", Body: "b", Category: "other", Priority: "critical"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTicketRepository{CreateFunc: func(context.Context, *ticket.Ticket) error {
				t.Fatal("repository must not be called")
				return nil
			}}
			_, err := NewCreateTicketUseCase(repo, &mockNumberGenerator{}, &mockPublisher{}, logger.Nop()).Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreateTicketUseCase_Execute_NumberGeneratorFails(t *testing.T) {
	gen := &mockNumberGenerator{GenerateFunc: func(context.Context) (string, error) {
		return "", errors.New("redis: connection refused")
	}}
	_, err := NewCreateTicketUseCase(&mockTicketRepository{}, gen, &mockPublisher{}, logger.Nop()).Execute(context.Background(),
		CreateTicketCommand{Actor: requester, Subject: "s", Body: "b", Category: "other"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
}
