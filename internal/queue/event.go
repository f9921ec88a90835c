// Package queue defines message payloads exchanged over the message broker.
package queue

// NotificationQueue is the durable queue carrying booking emails.
const NotificationQueue = "booking.notifications"

// NotificationEvent is published whenever a booking email has to go out:
// on submission, approval and rejection.  It carries every field the email
// templates use so the consumer never queries the primary database.
type NotificationEvent struct {
    Kind       string `json:"kind"` // booking.received | booking.approved | booking.rejected
    BookingID  uint64 `json:"booking_id"`
    Reference  string `json:"reference"`
    Name       string `json:"name"`
    Email      string `json:"email"`
    Date       string `json:"date"`
    Time       string `json:"time"`
    Duration   int    `json:"duration"`
    OccurredAt string `json:"occurred_at"`
}
