package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"
)

// HandlerFunc processes one decoded event.
type HandlerFunc func(ctx context.Context, ev NotificationEvent) error

// StartNotificationConsumer connects to RabbitMQ, declares the notification
// queue and hands every message to handle.  It reconnects with exponential
// backoff (capped at 30s) whenever the broker goes away and returns only
// when ctx is cancelled.  A message that fails to decode or handle is
// rejected without requeue so a bad payload cannot loop forever.
func StartNotificationConsumer(ctx context.Context, url string, handle HandlerFunc, log *logrus.Logger) error {
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            log.WithError(err).Warnf("notification-consumer: dial failed; retrying in %s", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = consumeLoop(ctx, conn, handle, log)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.WithError(err).Warn("notification-consumer: consume loop ended; reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, handle HandlerFunc, log *logrus.Logger) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(20, 0, false); err != nil {
        log.WithError(err).Warn("notification-consumer: set QoS failed")
    }
    if _, err := ch.QueueDeclare(NotificationQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(NotificationQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := HandleDelivery(ctx, d.Body, handle); err != nil {
                log.WithError(err).Error("notification-consumer: handle message failed")
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// HandleDelivery decodes a message body and passes it to handle.
func HandleDelivery(ctx context.Context, body []byte, handle HandlerFunc) error {
    var ev NotificationEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.Kind == "" || ev.Email == "" {
        return errors.New("event missing kind or email")
    }
    return handle(ctx, ev)
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
