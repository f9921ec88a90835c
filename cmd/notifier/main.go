// Command notifier consumes booking notification events from RabbitMQ and
// logs the rendered emails.  Run it next to the server when
// NOTIFY_DRIVER=amqp and NOTIFY_CONSUMER is off.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/iliyamo/studio-booking/internal/config"
	"github.com/iliyamo/studio-booking/internal/logger"
	"github.com/iliyamo/studio-booking/internal/notify"
	"github.com/iliyamo/studio-booking/internal/queue"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailer := notify.NewLogMailer(log, cfg.NotifyLogPath)
	handle := func(ctx context.Context, ev queue.NotificationEvent) error {
		return notify.Deliver(ctx, mailer, ev)
	}
	log.WithField("queue", queue.NotificationQueue).Info("notification consumer starting")
	if err := queue.StartNotificationConsumer(ctx, cfg.RabbitURL, handle, log); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("notification consumer")
	}
	log.Info("notification consumer stopped")
}
