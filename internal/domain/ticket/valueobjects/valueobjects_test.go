package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTicketStatus(t *testing.T) {
	for _, s := range []string{"open", "in_progress", "closed"} {
		status, err := NewTicketStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, status.String())
	}
	for _, s := range []string{"", "new", "resolved", "CLOSED"} {
		_, err := NewTicketStatus(s)
		assert.Error(t, err, s)
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		in    string
		hours int
	}{
		{"low", 72},
		{"medium", 24},
		{"high", 8},
		{"urgent", 2},
	}
	for _, tt := range tests {
		p, err := NewPriority(tt.in)
		assert.NoError(t, err)
		assert.Equal(t, tt.hours, p.FirstResponseHours())
	}
	_, err := NewPriority("critical")
	assert.Error(t, err)
}

func TestCategory(t *testing.T) {
	assert.True(t, CategoryRetailPartner.IsValid())
	_, err := NewCategory("billing")
	assert.Error(t, err)
}
