package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

type slotRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Start string `json:"start" validate:"omitempty,hhmm"`
	Notes string `json:"notes" validate:"max=5"`
	Kind  string `json:"kind" validate:"omitempty,oneof=accept reject"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     slotRequest
		wantErr string
	}{
		{"valid", slotRequest{Date: "2026-03-01", Start: "09:30"}, ""},
		{"missing date", slotRequest{}, "date is required"},
		{"bad clock", slotRequest{Date: "2026-03-01", Start: "24:00"}, "start must be a time in HH:MM format"},
		{"bad date", slotRequest{Date: "01/03/2026"}, "date must be a date in 2006-01-02 format"},
		{"too long", slotRequest{Date: "2026-03-01", Notes: "abcdef"}, "notes must be at most 5 characters long"},
		{"bad enum", slotRequest{Date: "2026-03-01", Kind: "maybe"}, "kind must be one of [accept reject]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			assert.Contains(t, appErr.Details, tt.wantErr)
		})
	}
}
