package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/studio-booking/internal/config"
	"github.com/iliyamo/studio-booking/internal/database"
	"github.com/iliyamo/studio-booking/internal/logger"
	"github.com/iliyamo/studio-booking/internal/metrics"
	"github.com/iliyamo/studio-booking/internal/middleware"
	"github.com/iliyamo/studio-booking/internal/model"
	"github.com/iliyamo/studio-booking/internal/notify"
	"github.com/iliyamo/studio-booking/internal/queue"
	"github.com/iliyamo/studio-booking/internal/repository"
	"github.com/iliyamo/studio-booking/internal/router"
	"github.com/iliyamo/studio-booking/internal/session"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, closeStores := openStores(ctx, cfg, log)
	defer closeStores()
	seed(ctx, cfg, stores, log)

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Warn("redis unavailable; using in-memory sessions and no response cache")
	} else {
		defer rdb.Close()
	}
	sessions := newSessionStore(ctx, cfg, rdb)

	mailer := notify.NewLogMailer(log, cfg.NotifyLogPath)
	var notifier notify.Notifier = notify.NewDirectNotifier(mailer)
	if cfg.NotifyDriver == config.NotifyAMQP {
		notifier = notify.NewQueueNotifier(queue.NewPublisher(cfg.RabbitURL))
		if cfg.NotifyConsumer {
			go func() {
				handle := func(ctx context.Context, ev queue.NotificationEvent) error { return notify.Deliver(ctx, mailer, ev) }
				if err := queue.StartNotificationConsumer(ctx, cfg.RabbitURL, handle, log); err != nil && !errors.Is(err, context.Canceled) {
					log.WithError(err).Error("notification consumer stopped")
				}
			}()
		}
	}

	e := router.New(router.Deps{
		Stores:   stores,
		Sessions: sessions,
		Cookie: middleware.CookieConfig{
			Name:   cfg.CookieName,
			Secret: cfg.SessionSecret,
			Secure: cfg.IsProd(),
		},
		Notifier:     notifier,
		Cache:        middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
		Log:          log,
		AllowOrigins: cfg.CORSOrigins,
	})

	addr := ":" + cfg.Port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "storage": cfg.StorageDriver}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("bye")
}

// openStores returns the configured stores and a function releasing them.
func openStores(ctx context.Context, cfg config.Config, log *logrus.Logger) (repository.Stores, func()) {
	if cfg.StorageDriver != config.StorageMySQL {
		return repository.NewMemoryStores(), func() {}
	}
	db, err := database.Open(database.Options{
		User: cfg.DBUser, Pass: cfg.DBPass, Host: cfg.DBHost, Port: cfg.DBPort, Name: cfg.DBName,
	})
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if err := database.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}
	return repository.NewSQLStores(db), func() { _ = db.Close() }
}

func seed(ctx context.Context, cfg config.Config, stores repository.Stores, log *logrus.Logger) {
	inventory, err := config.LoadInventory(cfg.SeedFile)
	if err != nil {
		log.WithError(err).Fatal("load seed inventory")
	}
	seeded, err := repository.Seed(ctx, stores, model.User{Username: cfg.AdminUsername, Password: cfg.AdminPassword}, inventory)
	if err != nil {
		log.WithError(err).Fatal("seed")
	}
	if seeded {
		log.WithFields(logrus.Fields{"admin": cfg.AdminUsername, "equipment": len(inventory)}).Info("seeded initial data")
	}
}

func newSessionStore(ctx context.Context, cfg config.Config, rdb *redis.Client) session.Store {
	if rdb != nil {
		return session.NewRedisStore(rdb, cfg.SessionPrefix, cfg.SessionTTL)
	}
	m := session.NewMemoryStore(cfg.SessionTTL)
	m.StartPruning(ctx, time.Hour)
	return m
}
