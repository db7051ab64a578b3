package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	bookingvo "github.com/tradesbook-ie/tradesbook/internal/domain/booking/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	photovo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

const (
	testCustomerID  uint = 10
	testInstallerID uint = 20
	testBookingID   uint = 7
)

type mockBookingRepository struct {
	CreateFunc     func(ctx context.Context, b *booking.Booking) error
	UpdateFunc     func(ctx context.Context, b *booking.Booking) error
	GetByIDFunc    func(ctx context.Context, id uint) (*booking.Booking, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]*booking.Booking, error)
	locked         int
}

func (m *mockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("booking not found")
}

func (m *mockBookingRepository) GetByIDForUpdate(ctx context.Context, id uint) (*booking.Booking, error) {
	m.locked++
	return m.GetByID(ctx, id)
}

func (m *mockBookingRepository) ListByUser(ctx context.Context, userID uint) ([]*booking.Booking, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func bookingRepoWith(b *booking.Booking) *mockBookingRepository {
	return &mockBookingRepository{GetByIDFunc: func(_ context.Context, id uint) (*booking.Booking, error) {
		if id != b.ID() {
			return nil, apperrors.NewNotFoundError("booking not found")
		}
		return b, nil
	}}
}

func newTestBooking(status bookingvo.BookingStatus) *booking.Booking {
	now := time.Now().UTC()
	b, err := booking.ReconstructBooking(testBookingID, testCustomerID, testInstallerID, 1, photovo.StageBoth, status, nil, "", nil, now, now)
	if err != nil {
		panic(err)
	}
	return b
}

// memProposalRepository keeps proposals in memory and records writes.
type memProposalRepository struct {
	mu        sync.Mutex
	nextID    uint
	items     map[uint]*negotiation.ScheduleProposal
	updated   []uint
	deleted   []uint
	UpdateErr error
	CreateErr error
}

func newMemProposalRepository(ps ...*negotiation.ScheduleProposal) *memProposalRepository {
	r := &memProposalRepository{items: make(map[uint]*negotiation.ScheduleProposal), nextID: 100}
	for _, p := range ps {
		r.items[p.ID()] = p
	}
	return r
}

func (r *memProposalRepository) Create(_ context.Context, p *negotiation.ScheduleProposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.nextID++
	if err := p.SetID(r.nextID); err != nil {
		return err
	}
	r.items[p.ID()] = p
	return nil
}

func (r *memProposalRepository) Update(_ context.Context, p *negotiation.ScheduleProposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.updated = append(r.updated, p.ID())
	r.items[p.ID()] = p
	return nil
}

func (r *memProposalRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("proposal not found")
	}
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memProposalRepository) GetByID(_ context.Context, id uint) (*negotiation.ScheduleProposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("proposal not found")
	}
	return p, nil
}

func (r *memProposalRepository) ListByBooking(_ context.Context, bookingID uint) ([]*negotiation.ScheduleProposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*negotiation.ScheduleProposal
	for _, p := range r.items {
		if p.BookingID() == bookingID {
			out = append(out, p)
		}
	}
	negotiation.SortNewestFirst(out)
	return out, nil
}

type inTxKey struct{}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(context.WithValue(ctx, inTxKey{}, true))
}

// staleOutsideTx answers reads made outside a transaction with a frozen
// list, the way a cache entry refilled before the last commit would.
type staleOutsideTx struct {
	*memProposalRepository
	stale []*negotiation.ScheduleProposal
}

func (r *staleOutsideTx) ListByBooking(ctx context.Context, bookingID uint) ([]*negotiation.ScheduleProposal, error) {
	if ctx.Value(inTxKey{}) == nil {
		return r.stale, nil
	}
	return r.memProposalRepository.ListByBooking(ctx, bookingID)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		_ = m.Publish(e)
	}
	return nil
}

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.GetEventType())
	}
	return out
}

var baseTime = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func newTestProposal(id uint, by vo.Party, status vo.ProposalStatus, offset time.Duration) *negotiation.ScheduleProposal {
	return newTestProposalFor(id, testInstallerID, by, status, offset)
}

func newTestProposalFor(id, installerID uint, by vo.Party, status vo.ProposalStatus, offset time.Duration) *negotiation.ScheduleProposal {
	slot, _ := vo.NewNamedTimeSlot("morning")
	proposer := testCustomerID
	if by == vo.PartyInstaller {
		proposer = installerID
	}
	p, err := negotiation.ReconstructScheduleProposal(
		id, testBookingID, installerID, by, proposer,
		time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), slot, status,
		"", "", baseTime.Add(offset), nil,
	)
	if err != nil {
		panic(err)
	}
	return p
}
