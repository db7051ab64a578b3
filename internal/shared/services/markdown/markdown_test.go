package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis and hard wraps",
			input:    "Hi **Aoife**,\nyour bracket is on the way.",
			contains: []string{"<strong>Aoife</strong>", "<br />"},
		},
		{
			name:        "script stripped",
			input:       "Thanks<script>alert(1)</script>",
			contains:    []string{"Thanks"},
			notContains: []string{"<script"},
		},
		{
			name:     "links get nofollow",
			input:    "See https://tradesbook.ie/help",
			contains: []string{`href="https://tradesbook.ie/help"`, `rel="nofollow`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.ToHTMLSanitized(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}
