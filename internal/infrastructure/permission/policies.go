package permission

import (
	"fmt"

	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
)

// Resources checked by the HTTP permission middleware.
const (
	ResourceBooking     = "booking"
	ResourceNegotiation = "schedule_negotiation"
	ResourcePhoto       = "photo_progress"
	ResourceTicket      = "support_ticket"
	ResourceTicketAdmin = "support_ticket_admin"

	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// defaultPolicies is the route-level matrix. Ownership checks happen in the use cases.
var defaultPolicies = [][]string{
	{string(authorization.RoleCustomer), ResourceBooking, ActionRead},
	{string(authorization.RoleCustomer), ResourceNegotiation, ActionRead},
	{string(authorization.RoleCustomer), ResourceNegotiation, ActionWrite},
	{string(authorization.RoleCustomer), ResourceNegotiation, ActionDelete},
	{string(authorization.RoleCustomer), ResourceTicket, ActionRead},
	{string(authorization.RoleCustomer), ResourceTicket, ActionWrite},

	{string(authorization.RoleInstaller), ResourceBooking, ActionRead},
	{string(authorization.RoleInstaller), ResourceNegotiation, ActionRead},
	{string(authorization.RoleInstaller), ResourceNegotiation, ActionWrite},
	{string(authorization.RoleInstaller), ResourceNegotiation, ActionDelete},
	{string(authorization.RoleInstaller), ResourcePhoto, ActionRead},
	{string(authorization.RoleInstaller), ResourcePhoto, ActionWrite},
	{string(authorization.RoleInstaller), ResourcePhoto, ActionDelete},
	{string(authorization.RoleInstaller), ResourceTicket, ActionRead},
	{string(authorization.RoleInstaller), ResourceTicket, ActionWrite},

	{string(authorization.RoleAdmin), ResourceBooking, ActionWrite},
	{string(authorization.RoleAdmin), ResourceNegotiation, ActionDelete},
	{string(authorization.RoleAdmin), ResourcePhoto, ActionRead},
	{string(authorization.RoleAdmin), ResourceTicketAdmin, ActionRead},
	{string(authorization.RoleAdmin), ResourceTicketAdmin, ActionWrite},
	{string(authorization.RoleAdmin), ResourceTicketAdmin, ActionDelete},
}

// adminInherits lists roles whose read access admins also get.
var adminInherits = []string{string(authorization.RoleCustomer)}

// InitDefaultPolicies adds any missing default policy. Existing rows are kept.
func (e *Enforcer) InitDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}
	for _, parent := range adminInherits {
		if _, err := e.enforcer.AddGroupingPolicy(string(authorization.RoleAdmin), parent); err != nil {
			return fmt.Errorf("failed to add role inheritance: %w", err)
		}
	}

	e.logger.Infow("permission policies initialized", "count", len(defaultPolicies))
	return nil
}
