package notify

import (
	"context"
	"time"

	"github.com/iliyamo/studio-booking/internal/model"
	"github.com/iliyamo/studio-booking/internal/queue"
)

// Notifier announces a booking event to the requester.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, b *model.Booking) error
}

// EventFor builds the queue payload describing b.
func EventFor(kind Kind, b *model.Booking) queue.NotificationEvent {
	return queue.NotificationEvent{
		Kind:       string(kind),
		BookingID:  b.ID,
		Reference:  b.Reference,
		Name:       b.Name,
		Email:      b.Email,
		Date:       b.Date,
		Time:       b.Time,
		Duration:   b.Duration,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// KindForStatus maps a decided status to its email kind.
func KindForStatus(s model.BookingStatus) (Kind, bool) {
	switch s {
	case model.StatusApproved:
		return KindApproved, true
	case model.StatusRejected:
		return KindRejected, true
	}
	return "", false
}

// DirectNotifier composes and sends in the calling goroutine.
type DirectNotifier struct {
	Mailer Mailer
}

func NewDirectNotifier(m Mailer) *DirectNotifier { return &DirectNotifier{Mailer: m} }

func (n *DirectNotifier) Notify(ctx context.Context, kind Kind, b *model.Booking) error {
	return Deliver(ctx, n.Mailer, EventFor(kind, b))
}

// Deliver composes ev and sends it through m.  The queue consumer uses it
// as its handler.
func Deliver(ctx context.Context, m Mailer, ev queue.NotificationEvent) error {
	msg, err := Compose(Kind(ev.Kind), ev)
	if err != nil {
		return err
	}
	return m.Send(ctx, msg)
}

// EventPublisher is the subset of queue.Publisher used by QueueNotifier.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.NotificationEvent) error
}

// QueueNotifier publishes events for an out-of-process consumer.
type QueueNotifier struct {
	Publisher EventPublisher
}

func NewQueueNotifier(p EventPublisher) *QueueNotifier { return &QueueNotifier{Publisher: p} }

func (n *QueueNotifier) Notify(ctx context.Context, kind Kind, b *model.Booking) error {
	return n.Publisher.Publish(ctx, EventFor(kind, b))
}
