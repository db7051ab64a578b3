package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	bookingvo "github.com/tradesbook-ie/tradesbook/internal/domain/booking/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	negvo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	photovo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	ticketvo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.BookingModel{},
		&models.ScheduleProposalModel{},
		&models.PhotoProgressModel{},
		&models.PhotoSessionModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
	))
	return gdb
}

func createBooking(t *testing.T, repo *BookingRepository, tvCount int) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(10, 20, tvCount, photovo.StageBoth)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBookingRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingRepository(gdb)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		b := createBooking(t, repo, 2)
		assert.NotZero(t, b.ID())

		got, err := repo.GetByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, uint(10), got.CustomerID())
		assert.Equal(t, 2, got.TVCount())
		assert.Equal(t, bookingvo.StatusPending, got.Status())
		assert.Nil(t, got.ScheduledDate())
	})

	t.Run("schedule keeps the calendar day", func(t *testing.T) {
		b := createBooking(t, repo, 1)
		day, err := biztime.ParseDate("2026-11-03")
		require.NoError(t, err)
		require.NoError(t, b.ApplySchedule(day, "morning"))
		require.NoError(t, repo.Update(ctx, b))

		got, err := repo.GetByID(ctx, b.ID())
		require.NoError(t, err)
		require.NotNil(t, got.ScheduledDate())
		assert.Equal(t, "2026-11-03", biztime.FormatDate(*got.ScheduledDate()))
		assert.Equal(t, "morning", got.ScheduledSlot())
		assert.Equal(t, bookingvo.StatusScheduled, got.Status())
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("list by either party", func(t *testing.T) {
		asCustomer, err := repo.ListByUser(ctx, 10)
		require.NoError(t, err)
		asInstaller, err := repo.ListByUser(ctx, 20)
		require.NoError(t, err)
		assert.Len(t, asCustomer, 2)
		assert.Len(t, asInstaller, 2)

		none, err := repo.ListByUser(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("locked read inside a transaction", func(t *testing.T) {
		b := createBooking(t, repo, 1)
		tm := db.NewTransactionManager(gdb)

		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			got, err := repo.GetByIDForUpdate(txCtx, b.ID())
			if err != nil {
				return err
			}
			assert.Equal(t, b.ID(), got.ID())
			_, err = repo.GetByIDForUpdate(txCtx, 9999)
			assert.True(t, apperrors.IsNotFoundError(err))
			return nil
		})
		require.NoError(t, err)
	})
}

func TestProposalRepository(t *testing.T) {
	gdb := setupTestDB(t)
	b := createBooking(t, NewBookingRepository(gdb), 1)
	repo := NewProposalRepository(gdb)
	ctx := context.Background()

	day, err := biztime.ParseDate("2026-11-10")
	require.NoError(t, err)
	custom, err := negvo.NewCustomTimeSlot("09:30", "11:00")
	require.NoError(t, err)
	afternoon, err := negvo.NewNamedTimeSlot("afternoon")
	require.NoError(t, err)

	first, err := negotiation.NewScheduleProposal(b.ID(), 20, negvo.PartyCustomer, 10, day, custom, "works for me")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	time.Sleep(2 * time.Millisecond)
	second, err := negotiation.NewScheduleProposal(b.ID(), 20, negvo.PartyInstaller, 20, day, afternoon, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	t.Run("list newest first with slots intact", func(t *testing.T) {
		list, err := repo.ListByBooking(ctx, b.ID())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID(), list[0].ID())
		assert.Equal(t, "afternoon", list[0].TimeSlot().Name())
		assert.Equal(t, "09:30", list[1].TimeSlot().Start())
		assert.Equal(t, "11:00", list[1].TimeSlot().End())
		assert.Equal(t, "2026-11-10", biztime.FormatDate(list[1].ProposedDate()))
	})

	t.Run("update records the response", func(t *testing.T) {
		require.NoError(t, second.Respond(negvo.PartyCustomer, negvo.OutcomeAccept, "see you then"))
		require.NoError(t, repo.Update(ctx, second))

		got, err := repo.GetByID(ctx, second.ID())
		require.NoError(t, err)
		assert.Equal(t, negvo.StatusAccepted, got.Status())
		assert.Equal(t, "see you then", got.ResponseMessage())
		assert.NotNil(t, got.RespondedAt())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID()))
		_, err := repo.GetByID(ctx, first.ID())
		assert.True(t, apperrors.IsNotFoundError(err))
		assert.True(t, apperrors.IsNotFoundError(repo.Delete(ctx, first.ID())))
	})
}

func TestPhotoRepository(t *testing.T) {
	gdb := setupTestDB(t)
	b := createBooking(t, NewBookingRepository(gdb), 2)
	repo := NewPhotoRepository(gdb)
	ctx := context.Background()

	t.Run("session not found then saved", func(t *testing.T) {
		_, err := repo.GetSession(ctx, b.ID())
		assert.True(t, apperrors.IsNotFoundError(err))

		s, err := photo.NewSession(b.ID(), 20, 2, photovo.StageBoth)
		require.NoError(t, err)
		require.NoError(t, repo.SaveSession(ctx, s))
		assert.NotZero(t, s.ID())

		got, err := repo.GetSession(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, photo.Cursor{TVIndex: 0, PhotoType: photovo.TypeBefore}, got.Cursor())
	})

	t.Run("upsert is keyed by tv index", func(t *testing.T) {
		p, err := photo.NewProgress(b.ID(), 20, 1)
		require.NoError(t, err)
		require.NoError(t, p.SetPhoto(photovo.TypeBefore, "data:image/jpeg;base64,AAAA", photovo.SourceUpload))
		require.NoError(t, repo.UpsertProgress(ctx, p))
		require.NotZero(t, p.ID())

		again, err := photo.NewProgress(b.ID(), 20, 1)
		require.NoError(t, err)
		require.NoError(t, again.SetPhoto(photovo.TypeAfter, "data:image/jpeg;base64,BBBB", photovo.SourceCamera))
		require.NoError(t, repo.UpsertProgress(ctx, again))
		assert.Equal(t, p.ID(), again.ID())

		list, err := repo.ListProgress(ctx, b.ID())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 1, list[0].TVIndex())
		assert.Equal(t, "data:image/jpeg;base64,BBBB", list[0].AfterURL())
	})

	t.Run("cleared photo is written back", func(t *testing.T) {
		list, err := repo.ListProgress(ctx, b.ID())
		require.NoError(t, err)
		p := list[0]
		p.ClearPhoto(photovo.TypeAfter)
		require.NoError(t, repo.UpsertProgress(ctx, p))

		list, err = repo.ListProgress(ctx, b.ID())
		require.NoError(t, err)
		assert.Empty(t, list[0].AfterURL())
		assert.False(t, list[0].IsCompleted())
	})
}

func TestTicketRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	newTicket := func(number string, requester uint) *ticket.Ticket {
		tk, err := ticket.NewTicket("TV bracket loose", "The bracket moved after install", ticketvo.CategoryInstallation, ticketvo.PriorityHigh,
			ticket.Requester{UserID: requester, Email: "a@example.ie", Name: "Aoife"})
		require.NoError(t, err)
		require.NoError(t, tk.SetNumber(number))
		require.NoError(t, repo.Create(ctx, tk))
		return tk
	}

	first := newTicket("TB-20261015-0001", 10)
	second := newTicket("TB-20261015-0002", 11)

	t.Run("duplicate number", func(t *testing.T) {
		tk, err := ticket.NewTicket("Dup", "body", ticketvo.CategoryOther, ticketvo.PriorityLow, ticket.Requester{UserID: 10})
		require.NoError(t, err)
		require.NoError(t, tk.SetNumber("TB-20261015-0001"))
		err = repo.Create(ctx, tk)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("reply and status change share a transaction", func(t *testing.T) {
		next := ticketvo.StatusInProgress
		msg, changed, err := first.Reply(1, "We will send someone out", &next)
		require.NoError(t, err)
		assert.True(t, changed)

		err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := repo.AddMessage(ctx, msg); err != nil {
				return err
			}
			return repo.Update(ctx, first)
		})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, first.ID())
		require.NoError(t, err)
		assert.Equal(t, ticketvo.StatusInProgress, got.Status())
		require.Len(t, got.Messages(), 1)
		assert.True(t, got.Messages()[0].IsAdminReply())
		assert.Equal(t, "Aoife", got.Requester().Name)
	})

	t.Run("lists", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		mine, err := repo.ListByRequester(ctx, 11)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, second.ID(), mine[0].ID())
	})

	t.Run("delete removes the thread", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID()))

		_, err := repo.GetByID(ctx, first.ID())
		assert.True(t, apperrors.IsNotFoundError(err))

		var count int64
		gdb.Model(&models.TicketMessageModel{}).Where("ticket_id = ?", first.ID()).Count(&count)
		assert.Zero(t, count)
	})
}
