package ticket

import (
	"strings"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
)

// Filter is a projection over an already fetched ticket list.
type Filter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	Search   string
}

// Matches applies status, priority and a case-insensitive search over
// subject, body and requester email.
func (f Filter) Matches(t *Ticket) bool {
	if f.Status != nil && t.Status() != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority() != *f.Priority {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Subject()), q) ||
		strings.Contains(strings.ToLower(t.Body()), q) ||
		strings.Contains(strings.ToLower(t.Requester().Email), q)
}

func (f Filter) Apply(tickets []*Ticket) []*Ticket {
	out := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
