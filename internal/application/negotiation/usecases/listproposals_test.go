package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingvo "github.com/tradesbook-ie/tradesbook/internal/domain/booking/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

var (
	customer  = authorization.Actor{UserID: testCustomerID, Role: authorization.RoleCustomer}
	installer = authorization.Actor{UserID: testInstallerID, Role: authorization.RoleInstaller}
	admin     = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	stranger  = authorization.Actor{UserID: 999, Role: authorization.RoleCustomer}
)

func TestListProposals_Empty(t *testing.T) {
	uc := NewListProposalsUseCase(bookingRepoWith(newTestBooking(bookingvo.StatusPending)), newMemProposalRepository(), logger.Nop())

	out, err := uc.Execute(context.Background(), ListProposalsQuery{BookingID: testBookingID, Actor: customer})
	require.NoError(t, err)
	assert.Empty(t, out.Proposals)
	assert.NotNil(t, out.Proposals)
	assert.Empty(t, out.Groups)
	assert.Nil(t, out.CurrentProposalID)
}

func TestListProposals_FlagsForViewer(t *testing.T) {
	proposals := newMemProposalRepository(
		newTestProposal(1, vo.PartyCustomer, vo.StatusCounterProposed, 0),
		newTestProposal(2, vo.PartyInstaller, vo.StatusPending, time.Hour),
	)
	uc := NewListProposalsUseCase(bookingRepoWith(newTestBooking(bookingvo.StatusPending)), proposals, logger.Nop())

	out, err := uc.Execute(context.Background(), ListProposalsQuery{BookingID: testBookingID, Actor: customer})
	require.NoError(t, err)
	require.Len(t, out.Proposals, 2)

	newest, older := out.Proposals[0], out.Proposals[1]
	assert.Equal(t, uint(2), newest.ID)
	assert.True(t, newest.IsCurrent)
	assert.True(t, newest.CanRespond, "customer answers the installer's pending proposal")
	assert.False(t, newest.CanDelete, "current proposal is never deletable")
	assert.False(t, older.IsCurrent)
	assert.False(t, older.CanRespond)
	assert.True(t, older.CanDelete)
	require.NotNil(t, out.CurrentProposalID)
	assert.Equal(t, uint(2), *out.CurrentProposalID)
	assert.Equal(t, 1, out.AwaitingResponse)

	out, err = uc.Execute(context.Background(), ListProposalsQuery{BookingID: testBookingID, Actor: installer})
	require.NoError(t, err)
	assert.False(t, out.Proposals[0].CanRespond, "proposer cannot answer own proposal")
	assert.Zero(t, out.AwaitingResponse)

	out, err = uc.Execute(context.Background(), ListProposalsQuery{BookingID: testBookingID, Actor: admin})
	require.NoError(t, err)
	assert.False(t, out.Proposals[0].CanRespond)
	assert.Zero(t, out.AwaitingResponse)
	assert.True(t, out.Proposals[1].CanDelete)
}

func TestListProposals_GroupsUseGlobalCurrent(t *testing.T) {
	// Installer 30 holds the newest proposal; installer 20's newest is not current.
	proposals := newMemProposalRepository(
		newTestProposalFor(1, 20, vo.PartyInstaller, vo.StatusRejected, 0),
		newTestProposalFor(2, 20, vo.PartyInstaller, vo.StatusRejected, time.Minute),
		newTestProposalFor(3, 20, vo.PartyInstaller, vo.StatusRejected, 2*time.Minute),
		newTestProposalFor(4, 30, vo.PartyInstaller, vo.StatusPending, time.Hour),
	)
	uc := NewListProposalsUseCase(bookingRepoWith(newTestBooking(bookingvo.StatusPending)), proposals, logger.Nop())

	out, err := uc.Execute(context.Background(), ListProposalsQuery{BookingID: testBookingID, Actor: admin})
	require.NoError(t, err)
	require.Len(t, out.Groups, 2)

	assert.Equal(t, uint(30), out.Groups[0].InstallerID)
	assert.True(t, out.Groups[0].Proposals[0].IsCurrent)

	g := out.Groups[1]
	assert.Equal(t, uint(20), g.InstallerID)
	assert.Equal(t, 3, g.Total)
	assert.Len(t, g.Proposals, negotiation.DefaultVisiblePerGroup)
	assert.Equal(t, 1, g.HiddenCount)
	for _, p := range g.Proposals {
		assert.False(t, p.IsCurrent)
		assert.True(t, p.CanDelete)
	}
}

func TestListProposals_Access(t *testing.T) {
	uc := NewListProposalsUseCase(bookingRepoWith(newTestBooking(bookingvo.StatusPending)), newMemProposalRepository(), logger.Nop())

	_, err := uc.Execute(context.Background(), ListProposalsQuery{BookingID: testBookingID, Actor: stranger})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), ListProposalsQuery{BookingID: 404, Actor: customer})
	assert.True(t, apperrors.IsNotFoundError(err))
}
