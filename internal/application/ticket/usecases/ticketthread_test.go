package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

func TestGetTicketUseCase_Visibility(t *testing.T) {
	repo := repoWithTicket(newTestTicket(5, vo.StatusOpen, vo.PriorityLow, "s", "b", "mary@example.ie"))
	uc := NewGetTicketUseCase(repo, logger.Nop())

	out, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 5, Actor: requester})
	require.NoError(t, err)
	assert.NotNil(t, out.Messages)

	_, err = uc.Execute(context.Background(), GetTicketQuery{TicketID: 5, Actor: admin})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), GetTicketQuery{TicketID: 5, Actor: other})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAddMessageUseCase(t *testing.T) {
	open := newTestTicket(5, vo.StatusOpen, vo.PriorityLow, "s", "b", "mary@example.ie")
	var saved *ticket.Message
	repo := repoWithTicket(open)
	repo.AddMessageFunc = func(_ context.Context, m *ticket.Message) error {
		saved = m
		return m.SetID(11)
	}
	uc := NewAddMessageUseCase(repo, logger.Nop())

	out, err := uc.Execute(context.Background(), AddMessageCommand{TicketID: 5, Actor: requester, Body: "Any update?"})
	require.NoError(t, err)
	assert.Equal(t, uint(11), out.ID)
	assert.False(t, out.IsAdminReply)
	require.NotNil(t, saved)

	_, err = uc.Execute(context.Background(), AddMessageCommand{TicketID: 5, Actor: other, Body: "hi"})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), AddMessageCommand{TicketID: 5, Actor: requester, Body: "   "})
	assert.True(t, apperrors.IsValidationError(err))

	closed := newTestTicket(6, vo.StatusClosed, vo.PriorityLow, "s", "b", "mary@example.ie")
	_, err = NewAddMessageUseCase(repoWithTicket(closed), logger.Nop()).Execute(context.Background(),
		AddMessageCommand{TicketID: 6, Actor: requester, Body: "reopen?"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestReplyTicketUseCase_WithStatusChange(t *testing.T) {
	tk := newTestTicket(5, vo.StatusOpen, vo.PriorityHigh, "Bracket", "loose", "mary@example.ie")
	repo := repoWithTicket(tk)
	var updated, messaged bool
	repo.UpdateFunc = func(context.Context, *ticket.Ticket) error { updated = true; return nil }
	repo.AddMessageFunc = func(_ context.Context, m *ticket.Message) error { messaged = true; return m.SetID(3) }
	tx := &mockTxRunner{}
	pub := &mockPublisher{}

	out, err := NewReplyTicketUseCase(repo, tx, pub, logger.Nop()).Execute(context.Background(), ReplyTicketCommand{
		TicketID:  5,
		Actor:     admin,
		Message:   "**Fixed** on our side.",
		NewStatus: "closed",
	})
	require.NoError(t, err)

	assert.Equal(t, "closed", out.Status)
	assert.NotNil(t, out.ClosedAt)
	require.Len(t, out.Messages, 1)
	assert.True(t, out.Messages[0].IsAdminReply)
	assert.True(t, updated)
	assert.True(t, messaged)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, pub.events, 1)
	evt, ok := pub.events[0].(ticket.TicketRepliedEvent)
	require.True(t, ok)
	assert.True(t, evt.StatusChanged)
	assert.Equal(t, "mary@example.ie", evt.RequesterEmail)
}

func TestReplyTicketUseCase_SameStatusIsNotAChange(t *testing.T) {
	tk := newTestTicket(5, vo.StatusInProgress, vo.PriorityHigh, "s", "b", "mary@example.ie")
	pub := &mockPublisher{}

	out, err := NewReplyTicketUseCase(repoWithTicket(tk), &mockTxRunner{}, pub, logger.Nop()).Execute(context.Background(),
		ReplyTicketCommand{TicketID: 5, Actor: admin, Message: "Looking into it", NewStatus: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", out.Status)
	assert.False(t, pub.events[0].(ticket.TicketRepliedEvent).StatusChanged)
}

func TestReplyTicketUseCase_Errors(t *testing.T) {
	tk := newTestTicket(5, vo.StatusOpen, vo.PriorityHigh, "s", "b", "mary@example.ie")

	_, err := NewReplyTicketUseCase(repoWithTicket(tk), &mockTxRunner{}, &mockPublisher{}, logger.Nop()).Execute(context.Background(),
		ReplyTicketCommand{TicketID: 5, Actor: requester, Message: "hi"})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = NewReplyTicketUseCase(repoWithTicket(tk), &mockTxRunner{}, &mockPublisher{}, logger.Nop()).Execute(context.Background(),
		ReplyTicketCommand{TicketID: 5, Actor: admin, Message: "hi", NewStatus: "resolved"})
	assert.True(t, apperrors.IsValidationError(err))

	repo := repoWithTicket(tk)
	repo.UpdateFunc = func(context.Context, *ticket.Ticket) error { return errors.New("tx aborted") }
	pub := &mockPublisher{}
	_, err = NewReplyTicketUseCase(repo, &mockTxRunner{}, pub, logger.Nop()).Execute(context.Background(),
		ReplyTicketCommand{TicketID: 5, Actor: admin, Message: "hi", NewStatus: "closed"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
	assert.Empty(t, pub.events)
}

func TestSetStatusUseCase(t *testing.T) {
	tk := newTestTicket(5, vo.StatusClosed, vo.PriorityLow, "s", "b", "mary@example.ie")
	repo := repoWithTicket(tk)
	updates := 0
	repo.UpdateFunc = func(context.Context, *ticket.Ticket) error { updates++; return nil }
	uc := NewSetStatusUseCase(repo, logger.Nop())

	assignee := uint(1)
	out, err := uc.Execute(context.Background(), SetStatusCommand{TicketID: 5, Actor: admin, Status: "open", AssignedTo: &assignee})
	require.NoError(t, err)
	assert.Equal(t, "open", out.Status)
	assert.Nil(t, out.ClosedAt)
	require.NotNil(t, out.AssignedTo)
	assert.Equal(t, uint(1), *out.AssignedTo)
	assert.Equal(t, 1, updates)

	_, err = uc.Execute(context.Background(), SetStatusCommand{TicketID: 5, Actor: admin, Status: "open"})
	require.NoError(t, err)
	assert.Equal(t, 1, updates, "unchanged status is not written")

	_, err = uc.Execute(context.Background(), SetStatusCommand{TicketID: 5, Actor: requester, Status: "closed"})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), SetStatusCommand{TicketID: 9, Actor: admin, Status: "closed"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase(t *testing.T) {
	tk := newTestTicket(5, vo.StatusOpen, vo.PriorityLow, "s", "b", "mary@example.ie")
	repo := repoWithTicket(tk)
	var deleted uint
	repo.DeleteFunc = func(_ context.Context, id uint) error { deleted = id; return nil }
	tx := &mockTxRunner{}
	uc := NewDeleteTicketUseCase(repo, tx, logger.Nop())

	err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 5, Actor: admin})
	assert.True(t, apperrors.IsValidationError(err), "unconfirmed delete is refused")
	assert.Zero(t, deleted)

	err = uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 5, Actor: requester, Confirmed: true})
	assert.True(t, apperrors.IsForbiddenError(err))

	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 5, Actor: admin, Confirmed: true}))
	assert.Equal(t, uint(5), deleted)
	assert.Equal(t, 1, tx.calls)
}
