package http

import (
	bookingUsecases "github.com/tradesbook-ie/tradesbook/internal/application/booking/usecases"
	negotiationUsecases "github.com/tradesbook-ie/tradesbook/internal/application/negotiation/usecases"
	photoUsecases "github.com/tradesbook-ie/tradesbook/internal/application/photo/usecases"
	ticketUsecases "github.com/tradesbook-ie/tradesbook/internal/application/ticket/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/imagestore"
)

// allUseCases holds the use cases shared between handlers.
type allUseCases struct {
	// Booking
	createBooking *bookingUsecases.CreateBookingUseCase
	getBooking    *bookingUsecases.GetBookingUseCase

	// Schedule negotiation
	listProposals     *negotiationUsecases.ListProposalsUseCase
	proposeSchedule   *negotiationUsecases.ProposeScheduleUseCase
	respondToProposal *negotiationUsecases.RespondToProposalUseCase
	deleteProposal    *negotiationUsecases.DeleteProposalUseCase

	// Installation photos
	getProgress  *photoUsecases.GetProgressUseCase
	capturePhoto *photoUsecases.CapturePhotoUseCase
	deletePhoto  *photoUsecases.DeletePhotoUseCase
	submitPhotos *photoUsecases.SubmitPhotosUseCase

	// Support tickets
	createTicket *ticketUsecases.CreateTicketUseCase
	listTickets  *ticketUsecases.ListTicketsUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	addMessage   *ticketUsecases.AddMessageUseCase
	replyTicket  *ticketUsecases.ReplyTicketUseCase
	setStatus    *ticketUsecases.SetStatusUseCase
	deleteTicket *ticketUsecases.DeleteTicketUseCase
}

func (c *Container) newUseCases() *allUseCases {
	log := c.log
	repos := c.repos
	images := imagestore.NewDataURLStore(imagestore.DefaultMaxBytes)

	return &allUseCases{
		createBooking: bookingUsecases.NewCreateBookingUseCase(repos.bookingRepo, log),
		getBooking:    bookingUsecases.NewGetBookingUseCase(repos.bookingRepo, log),

		listProposals: negotiationUsecases.NewListProposalsUseCase(repos.bookingRepo, repos.proposalRepo, log),
		proposeSchedule: negotiationUsecases.NewProposeScheduleUseCase(
			repos.bookingRepo, repos.proposalRepo, c.txManager, c.dispatcher, log,
		),
		respondToProposal: negotiationUsecases.NewRespondToProposalUseCase(
			repos.bookingRepo, repos.proposalRepo, c.txManager, c.dispatcher, log,
		),
		deleteProposal: negotiationUsecases.NewDeleteProposalUseCase(repos.bookingRepo, repos.proposalRepo, c.txManager, c.dispatcher, log),

		getProgress:  photoUsecases.NewGetProgressUseCase(repos.bookingRepo, repos.photoRepo, log),
		capturePhoto: photoUsecases.NewCapturePhotoUseCase(repos.bookingRepo, repos.photoRepo, images, c.txManager, log),
		deletePhoto:  photoUsecases.NewDeletePhotoUseCase(repos.bookingRepo, repos.photoRepo, log),
		submitPhotos: photoUsecases.NewSubmitPhotosUseCase(
			repos.bookingRepo, repos.photoRepo, images, c.txManager, c.dispatcher, log,
		),

		createTicket: ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.ticketNumber, c.dispatcher, log),
		listTickets:  ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log),
		getTicket:    ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, log),
		addMessage:   ticketUsecases.NewAddMessageUseCase(repos.ticketRepo, log),
		replyTicket:  ticketUsecases.NewReplyTicketUseCase(repos.ticketRepo, c.txManager, c.dispatcher, log),
		setStatus:    ticketUsecases.NewSetStatusUseCase(repos.ticketRepo, log),
		deleteTicket: ticketUsecases.NewDeleteTicketUseCase(repos.ticketRepo, c.txManager, log),
	}
}
