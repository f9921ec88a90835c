// Package service implements the booking lifecycle and inventory rules on
// top of the repository stores.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/studio-booking/internal/metrics"
	"github.com/iliyamo/studio-booking/internal/model"
	"github.com/iliyamo/studio-booking/internal/notify"
	"github.com/iliyamo/studio-booking/internal/repository"
	"github.com/iliyamo/studio-booking/internal/utils"
)

// ErrInvalidStatus is returned when a decision names a status other than
// approved or rejected.
var ErrInvalidStatus = errors.New("invalid booking status")

// maxReferenceAttempts bounds how often Create draws a new reference after
// a collision.
const maxReferenceAttempts = 5

// BookingService creates bookings and applies admin decisions.
type BookingService struct {
	store    repository.BookingStore
	notifier notify.Notifier
	log      *logrus.Logger

	now          func() time.Time
	newReference func(time.Time) string
}

func NewBookingService(store repository.BookingStore, n notify.Notifier, log *logrus.Logger) *BookingService {
	return &BookingService{
		store:        store,
		notifier:     n,
		log:          log,
		now:          time.Now,
		newReference: utils.NewReference,
	}
}

// Create stores a validated booking as pending with a fresh reference and
// sends the "request received" email.  A failed email does not fail the
// booking.
func (s *BookingService) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	created := s.now().UTC().Truncate(time.Microsecond)
	b.Status = model.StatusPending
	b.CreatedAt = created
	if b.EquipmentList == nil {
		b.EquipmentList = []string{}
	}

	var err error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		b.Reference = s.newReference(created)
		err = s.store.Create(ctx, b)
		if !errors.Is(err, repository.ErrReferenceExists) {
			break
		}
		s.log.WithField("reference", b.Reference).Debug("booking reference collision; drawing again")
	}
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.notify(ctx, notify.KindReceived, b)
	return b, nil
}

func (s *BookingService) Get(ctx context.Context, id uint64) (*model.Booking, error) {
	return s.store.GetByID(ctx, id)
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	return s.store.GetByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
}

// List returns bookings newest first.  An empty or unknown status lists
// every booking.
func (s *BookingService) List(ctx context.Context, status, search, date string) ([]*model.Booking, error) {
	f := model.BookingFilter{
		Search: strings.TrimSpace(search),
		Date:   strings.TrimSpace(date),
	}
	if st, ok := model.ParseBookingStatus(strings.ToLower(strings.TrimSpace(status))); ok {
		f.Status = st
	}
	return s.store.List(ctx, f)
}

// UpdateStatus decides a pending booking and emails the requester.  A
// booking that is already approved or rejected yields
// repository.ErrInvalidTransition.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint64, status model.BookingStatus) (*model.Booking, error) {
	kind, ok := notify.KindForStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	b, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	metrics.IncBookingDecision(string(status))
	s.notify(ctx, kind, b)
	return b, nil
}

func (s *BookingService) notify(ctx context.Context, kind notify.Kind, b *model.Booking) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, kind, b); err != nil {
		metrics.IncNotificationFailed(string(kind))
		s.log.WithError(err).WithFields(logrus.Fields{
			"kind":      string(kind),
			"reference": b.Reference,
		}).Warn("booking notification failed")
	}
}
