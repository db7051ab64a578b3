package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParty_Counterparty(t *testing.T) {
	assert.Equal(t, PartyInstaller, PartyCustomer.Counterparty())
	assert.Equal(t, PartyCustomer, PartyInstaller.Counterparty())

	_, err := NewParty("admin")
	assert.Error(t, err)
}

func TestProposalStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ProposalStatus
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCounterProposed, true},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusAccepted, false},
		{StatusCounterProposed, StatusAccepted, false},
		{StatusPending, ProposalStatus("expired"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, StatusAccepted, OutcomeAccept.Status())
	assert.Equal(t, StatusRejected, OutcomeReject.Status())

	_, err := NewOutcome("maybe")
	assert.Error(t, err)
}

func TestTimeSlot(t *testing.T) {
	t.Run("named window", func(t *testing.T) {
		slot, err := NewNamedTimeSlot("afternoon")
		require.NoError(t, err)
		assert.True(t, slot.IsNamed())
		assert.Equal(t, "12:00", slot.Start())
		assert.Equal(t, "17:00", slot.End())
		assert.Equal(t, "afternoon", slot.String())
	})

	t.Run("custom window round trip", func(t *testing.T) {
		slot, err := NewCustomTimeSlot("09:30", "11:00")
		require.NoError(t, err)
		assert.False(t, slot.IsNamed())
		assert.Equal(t, "09:30-11:00", slot.String())

		parsed, err := ParseTimeSlot(slot.String())
		require.NoError(t, err)
		assert.Equal(t, slot, parsed)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewNamedTimeSlot("night")
		assert.Error(t, err)
		_, err = NewCustomTimeSlot("11:00", "09:00")
		assert.Error(t, err)
		_, err = NewCustomTimeSlot("10:00", "10:00")
		assert.Error(t, err)
		_, err = NewCustomTimeSlot("9am", "10:00")
		assert.Error(t, err)
		_, err = ParseTimeSlot("")
		assert.Error(t, err)
	})
}
