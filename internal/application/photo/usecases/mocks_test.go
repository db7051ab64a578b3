package usecases

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	bookingvo "github.com/tradesbook-ie/tradesbook/internal/domain/booking/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	apperrors "github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

const (
	testBookingID   uint = 5
	testCustomerID  uint = 10
	testInstallerID uint = 20
)

var (
	installer = authorization.Actor{UserID: testInstallerID, Role: authorization.RoleInstaller}
	admin     = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	customer  = authorization.Actor{UserID: testCustomerID, Role: authorization.RoleCustomer}
)

type mockBookingRepository struct {
	booking    *booking.Booking
	UpdateFunc func(ctx context.Context, b *booking.Booking) error
	updates    int
}

func (m *mockBookingRepository) Create(context.Context, *booking.Booking) error { return nil }

func (m *mockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	m.updates++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) GetByID(_ context.Context, id uint) (*booking.Booking, error) {
	if m.booking == nil || m.booking.ID() != id {
		return nil, apperrors.NewNotFoundError("booking not found")
	}
	return m.booking, nil
}

func (m *mockBookingRepository) GetByIDForUpdate(ctx context.Context, id uint) (*booking.Booking, error) {
	return m.GetByID(ctx, id)
}

func (m *mockBookingRepository) ListByUser(context.Context, uint) ([]*booking.Booking, error) {
	return nil, nil
}

func newBookingRepo(tvCount int, stage vo.WorkflowStage) *mockBookingRepository {
	now := time.Now().UTC()
	b, err := booking.ReconstructBooking(testBookingID, testCustomerID, testInstallerID, tvCount, stage, bookingvo.StatusInProgress, nil, "", nil, now, now)
	if err != nil {
		panic(err)
	}
	return &mockBookingRepository{booking: b}
}

// memPhotoRepository stores rows by value so that unsaved tracker changes
// are not visible to later loads.
type memPhotoRepository struct {
	mu        sync.Mutex
	session   *photo.Session
	rows      map[int]snapshot
	nextID    uint
	upserts   int
	UpsertErr error
}

type snapshot struct {
	id                        uint
	beforeURL, afterURL       string
	beforeSource, afterSource vo.Source
}

func newMemPhotoRepository() *memPhotoRepository {
	return &memPhotoRepository{rows: make(map[int]snapshot)}
}

func (r *memPhotoRepository) GetSession(_ context.Context, bookingID uint) (*photo.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil, apperrors.NewNotFoundError("photo session not found")
	}
	return photo.ReconstructSession(r.session.ID(), r.session.BookingID(), r.session.InstallerID(),
		r.session.TVCount(), r.session.Stage(), r.session.Cursor(), r.session.UpdatedAt())
}

func (r *memPhotoRepository) SaveSession(_ context.Context, s *photo.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID() == 0 {
		if err := s.SetID(1); err != nil {
			return err
		}
	}
	r.session = s
	return nil
}

func (r *memPhotoRepository) ListProgress(_ context.Context, bookingID uint) ([]*photo.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*photo.Progress, 0, len(r.rows))
	now := time.Now().UTC()
	for tv, s := range r.rows {
		p, err := photo.ReconstructProgress(s.id, bookingID, testInstallerID, tv, s.beforeURL, s.afterURL, s.beforeSource, s.afterSource, now, now)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPhotoRepository) UpsertProgress(_ context.Context, p *photo.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	if r.UpsertErr != nil {
		return r.UpsertErr
	}
	s, ok := r.rows[p.TVIndex()]
	if !ok {
		r.nextID++
		s.id = r.nextID
	}
	if p.ID() == 0 {
		if err := p.SetID(s.id); err != nil {
			return err
		}
	}
	s.beforeURL, s.afterURL = p.BeforeURL(), p.AfterURL()
	s.beforeSource, s.afterSource = p.BeforeSource(), p.AfterSource()
	r.rows[p.TVIndex()] = s
	return nil
}

// fakeImageStore accepts base64 payloads, optionally wrapped in a data URL.
type fakeImageStore struct {
	stored int
}

func (f *fakeImageStore) Store(_ context.Context, ref ImageRef, payload string) (string, error) {
	raw := payload
	if i := strings.Index(payload, ","); strings.HasPrefix(payload, "data:") && i > 0 {
		raw = payload[i+1:]
	}
	if _, err := base64.StdEncoding.DecodeString(raw); err != nil || raw == "" {
		return "", fmt.Errorf("%w: not base64", photo.ErrInvalidImage)
	}
	f.stored++
	if raw == payload {
		return "data:image/jpeg;base64," + raw, nil
	}
	return payload, nil
}

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPublisher struct {
	events []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.events = append(m.events, evts...)
	return nil
}

const jpegB64 = "/9j/4AAQSkZJRgABAQ=="
