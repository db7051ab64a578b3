package http

import (
	"context"

	bookingHandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/booking"
	healthHandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/health"
	negotiationHandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/negotiation"
	photoHandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/photo"
	ticketHandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	healthHandler      *healthHandlers.HealthHandler
	bookingHandler     *bookingHandlers.BookingHandler
	negotiationHandler *negotiationHandlers.NegotiationHandler
	photoHandler       *photoHandlers.PhotoHandler
	ticketHandler      *ticketHandlers.TicketHandler
	adminTicketHandler *ticketHandlers.AdminTicketHandler
}

func (c *Container) newHandlers() *allHandlers {
	log := c.log
	ucs := c.ucs

	checks := map[string]healthHandlers.Checker{
		"database": healthHandlers.CheckerFunc(func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		"redis": healthHandlers.CheckerFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}),
	}

	return &allHandlers{
		healthHandler:  healthHandlers.NewHealthHandler(checks, log),
		bookingHandler: bookingHandlers.NewBookingHandler(ucs.createBooking, ucs.getBooking, log),
		negotiationHandler: negotiationHandlers.NewNegotiationHandler(
			ucs.listProposals, ucs.proposeSchedule, ucs.respondToProposal, ucs.deleteProposal, log,
		),
		photoHandler: photoHandlers.NewPhotoHandler(
			ucs.getProgress, ucs.capturePhoto, ucs.deletePhoto, ucs.submitPhotos, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicket, ucs.listTickets, ucs.getTicket, ucs.addMessage, log,
		),
		adminTicketHandler: ticketHandlers.NewAdminTicketHandler(
			ucs.listTickets, ucs.getTicket, ucs.replyTicket, ucs.setStatus, ucs.deleteTicket, log,
		),
	}
}
