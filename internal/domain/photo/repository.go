package photo

import "context"

type Repository interface {
	GetSession(ctx context.Context, bookingID uint) (*Session, error)
	SaveSession(ctx context.Context, session *Session) error
	ListProgress(ctx context.Context, bookingID uint) ([]*Progress, error)
	// UpsertProgress writes the row keyed by (booking, tvIndex).
	UpsertProgress(ctx context.Context, progress *Progress) error
}
