package queue

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends NotificationEvents to RabbitMQ.  Each Publish dials a fresh
// connection; booking volume is a handful of messages a day.
type Publisher struct {
    URL   string
    Queue string
}

// NewPublisher returns a Publisher for the notification queue on url.
func NewPublisher(url string) *Publisher {
    return &Publisher{URL: url, Queue: NotificationQueue}
}

// Publish declares the queue (idempotent) and publishes ev as a persistent
// JSON message.  Errors are returned so the caller can log and move on.
func (p *Publisher) Publish(ctx context.Context, ev NotificationEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }
    conn, err := amqp.Dial(p.URL)
    if err != nil {
        return fmt.Errorf("dial broker: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    // Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        p.Queue, // name
        true,    // durable
        false,   // autoDelete
        false,   // exclusive
        false,   // noWait
        nil,     // args
    ); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    time.Now().UTC(),
        Type:         ev.Kind,
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx,
        "",      // default exchange
        p.Queue, // routing key = queue name
        false,   // mandatory
        false,   // immediate
        pub,
    ); err != nil {
        return fmt.Errorf("publish: %w", err)
    }
    return nil
}
