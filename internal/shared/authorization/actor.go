package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   UserRole
	Email  string
	Name   string
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// ActorFromContext reads the caller populated by the auth middleware.
func ActorFromContext(c *gin.Context) (Actor, error) {
	raw, exists := c.Get(ContextKeyUserID)
	if !exists {
		return Actor{}, errors.NewUnauthorizedError("authentication required")
	}
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return Actor{}, errors.NewUnauthorizedError("authentication required")
	}
	return Actor{
		UserID: userID,
		Role:   ParseUserRole(c.GetString(ContextKeyUserRole)),
		Email:  c.GetString(ContextKeyUserEmail),
		Name:   c.GetString(ContextKeyUserName),
	}, nil
}
