package negotiation

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/dto"
	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/testutil"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type mockListProposalsUC struct {
	result *dto.ProposalListDTO
	err    error
	got    usecases.ListProposalsQuery
}

func (m *mockListProposalsUC) Execute(_ context.Context, query usecases.ListProposalsQuery) (*dto.ProposalListDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockProposeUC struct {
	result *dto.ProposalDTO
	err    error
	got    usecases.ProposeScheduleCommand
}

func (m *mockProposeUC) Execute(_ context.Context, cmd usecases.ProposeScheduleCommand) (*dto.ProposalDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRespondUC struct {
	result *usecases.RespondToProposalResult
	err    error
	got    usecases.RespondToProposalCommand
}

func (m *mockRespondUC) Execute(_ context.Context, cmd usecases.RespondToProposalCommand) (*usecases.RespondToProposalResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteUC struct {
	err error
	got usecases.DeleteProposalCommand
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteProposalCommand) error {
	m.got = cmd
	return m.err
}

func TestNegotiationHandler_ListProposals_EmptyIsValid(t *testing.T) {
	mockUC := &mockListProposalsUC{result: &dto.ProposalListDTO{BookingID: 3, Proposals: []dto.ProposalDTO{}, Groups: []dto.ProposalGroupDTO{}}}
	handler := NewNegotiationHandler(mockUC, nil, nil, nil, logger.Nop())

	c, w := testutil.NewTestContext(http.MethodGet, "/bookings/3/schedule-negotiations", nil)
	testutil.SetAuthContext(c, 10, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "3")

	handler.ListProposals(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), mockUC.got.BookingID)
	assert.Zero(t, mockUC.got.VisiblePerGroup)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"proposals":[]`)
}

func TestNegotiationHandler_ListProposals_VisibleOverride(t *testing.T) {
	mockUC := &mockListProposalsUC{result: &dto.ProposalListDTO{BookingID: 3}}
	handler := NewNegotiationHandler(mockUC, nil, nil, nil, logger.Nop())

	c, w := testutil.NewTestContext(http.MethodGet, "/bookings/3/schedule-negotiations", nil)
	testutil.SetAuthContext(c, 10, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetQueryParams(c, map[string]string{"visible": "5"})

	handler.ListProposals(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, mockUC.got.VisiblePerGroup)
}

func TestNegotiationHandler_ProposeSchedule(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "named slot",
			body:       map[string]any{"proposed_date": "2026-11-02", "proposed_time_slot": "morning"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "custom window",
			body:       map[string]any{"proposed_date": "2026-11-02", "start_time": "09:30", "end_time": "11:00"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "bad date",
			body:       map[string]any{"proposed_date": "02/11/2026", "proposed_time_slot": "morning"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown slot",
			body:       map[string]any{"proposed_date": "2026-11-02", "proposed_time_slot": "night"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad clock",
			body:       map[string]any{"proposed_date": "2026-11-02", "start_time": "9am", "end_time": "11:00"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockProposeUC{result: &dto.ProposalDTO{ID: 1, Status: "pending"}}
			handler := NewNegotiationHandler(nil, mockUC, nil, nil, logger.Nop())

			c, w := testutil.NewTestContext(http.MethodPost, "/bookings/3/schedule-negotiations", tt.body)
			testutil.SetAuthContext(c, 20, authorization.RoleInstaller)
			testutil.SetURLParam(c, "id", "3")

			handler.ProposeSchedule(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "2026-11-02", mockUC.got.Date)
			}
		})
	}
}

func TestNegotiationHandler_RespondToProposal_MapsStatus(t *testing.T) {
	tests := []struct {
		status  string
		outcome string
	}{
		{status: "accepted", outcome: "accept"},
		{status: "rejected", outcome: "reject"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			mockUC := &mockRespondUC{result: &usecases.RespondToProposalResult{}}
			handler := NewNegotiationHandler(nil, nil, mockUC, nil, logger.Nop())

			c, w := testutil.NewTestContext(http.MethodPatch, "/schedule-negotiations/4", RespondToProposalRequest{
				Status:          tt.status,
				ResponseMessage: "ok",
			})
			testutil.SetAuthContext(c, 10, authorization.RoleCustomer)
			testutil.SetURLParam(c, "id", "4")

			handler.RespondToProposal(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.outcome, mockUC.got.Outcome)
			assert.Equal(t, uint(4), mockUC.got.ProposalID)
		})
	}
}

func TestNegotiationHandler_RespondToProposal_Forbidden(t *testing.T) {
	mockUC := &mockRespondUC{err: errors.NewForbiddenError("only the other party can respond to this proposal")}
	handler := NewNegotiationHandler(nil, nil, mockUC, nil, logger.Nop())

	c, w := testutil.NewTestContext(http.MethodPatch, "/schedule-negotiations/4", RespondToProposalRequest{Status: "accepted"})
	testutil.SetAuthContext(c, 20, authorization.RoleInstaller)
	testutil.SetURLParam(c, "id", "4")

	handler.RespondToProposal(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "forbidden", resp.Error.Type)
}

func TestNegotiationHandler_RespondToProposal_RejectsCounterProposedStatus(t *testing.T) {
	handler := NewNegotiationHandler(nil, nil, &mockRespondUC{}, nil, logger.Nop())

	c, w := testutil.NewTestContext(http.MethodPatch, "/schedule-negotiations/4", RespondToProposalRequest{Status: "counter_proposed"})
	testutil.SetAuthContext(c, 10, authorization.RoleCustomer)
	testutil.SetURLParam(c, "id", "4")

	handler.RespondToProposal(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNegotiationHandler_DeleteProposal(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockUC := &mockDeleteUC{}
		handler := NewNegotiationHandler(nil, nil, nil, mockUC, logger.Nop())

		c, w := testutil.NewTestContext(http.MethodDelete, "/schedule-negotiations/4", nil)
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "4")

		handler.DeleteProposal(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(4), mockUC.got.ProposalID)
	})

	t.Run("current proposal", func(t *testing.T) {
		mockUC := &mockDeleteUC{err: errors.NewValidationError("the current proposal cannot be deleted")}
		handler := NewNegotiationHandler(nil, nil, nil, mockUC, logger.Nop())

		c, w := testutil.NewTestContext(http.MethodDelete, "/schedule-negotiations/4", nil)
		testutil.SetAuthContext(c, 10, authorization.RoleCustomer)
		testutil.SetURLParam(c, "id", "4")

		handler.DeleteProposal(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
