package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rawatanuj07/eventease/internal/config"
	"github.com/rawatanuj07/eventease/internal/handler"
	"github.com/rawatanuj07/eventease/internal/lock"
	"github.com/rawatanuj07/eventease/internal/logger"
	"github.com/rawatanuj07/eventease/internal/middleware"
	"github.com/rawatanuj07/eventease/internal/notification"
	"github.com/rawatanuj07/eventease/internal/repository/memory"
	mongostore "github.com/rawatanuj07/eventease/internal/repository/mongo"
	"github.com/rawatanuj07/eventease/internal/repository/postgres"
	"github.com/rawatanuj07/eventease/internal/router"
	"github.com/rawatanuj07/eventease/internal/scheduler"
	"github.com/rawatanuj07/eventease/internal/service"
	"github.com/rawatanuj07/eventease/internal/service/ports"
)

const appName = "eventease"

type resource struct {
	name  string
	close func(ctx context.Context) error
}

type App struct {
	cfg        *config.Config
	log        *slog.Logger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler

	eventRepo   ports.EventRepo
	bookingRepo ports.BookingRepo
	locker      ports.Locker
	notifier    notification.Multi

	// closed in reverse order on shutdown
	resources []resource
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	app.log = logger.New(logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		App:    appName,
	})

	ctx := context.Background()

	if err := app.initStorage(ctx); err != nil {
		app.closeResources(ctx)
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err := app.initLocker(ctx); err != nil {
		app.closeResources(ctx)
		return nil, fmt.Errorf("init locker: %w", err)
	}

	if err := app.initNotifier(); err != nil {
		app.closeResources(ctx)
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initStorage(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case config.DriverPostgres:
		return a.initPostgres(ctx)
	case config.DriverMongo:
		return a.initMongo(ctx)
	case config.DriverMemory:
		store := memory.NewStore()
		a.eventRepo = memory.NewEventRepo(store)
		a.bookingRepo = memory.NewBookingRepo(store)
		a.log.Warn("using in-memory storage, data is lost on restart")
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) initPostgres(ctx context.Context) error {
	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	pg := a.cfg.Postgres
	pool, err := postgres.NewPool(ctx, pg.DSN(), postgres.PoolOptions{
		MaxConns:        pg.MaxConns,
		MinConns:        pg.MinConns,
		ConnMaxLifetime: pg.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	a.addResource("database connection", func(context.Context) error {
		pool.Close()
		return nil
	})

	a.eventRepo = postgres.NewEventRepo(pool)
	a.bookingRepo = postgres.NewBookingRepo(pool)

	a.log.LogAttrs(ctx, slog.LevelInfo, "database connected",
		slog.String("host", pg.Host),
		slog.Int("port", pg.Port),
		slog.String("database", pg.Database),
	)

	return nil
}

func (a *App) initMongo(ctx context.Context) error {
	mc := a.cfg.Mongo
	client, err := mongostore.Connect(ctx, mc.URI, mc.Timeout)
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}
	a.addResource("mongo client", client.Disconnect)

	db := client.Database(mc.Database)
	if err = mongostore.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}

	a.eventRepo = mongostore.NewEventRepo(db)
	a.bookingRepo = mongostore.NewBookingRepo(db)

	a.log.LogAttrs(ctx, slog.LevelInfo, "mongo connected",
		slog.String("database", mc.Database),
	)

	return nil
}

func (a *App) initLocker(ctx context.Context) error {
	rc := a.cfg.Redis
	if !rc.Enabled {
		a.log.Info("redis disabled, same-user booking requests are not serialised")
		return nil
	}

	client, err := lock.NewRedisClient(ctx, rc.Addr, rc.Password, rc.DB)
	if err != nil {
		return err
	}
	a.addResource("redis client", func(context.Context) error { return client.Close() })

	a.locker = lock.NewRedisLocker(client, a.cfg.Booking.LockTTL)
	a.log.LogAttrs(ctx, slog.LevelInfo, "redis connected", slog.String("addr", rc.Addr))

	return nil
}

func (a *App) initNotifier() error {
	if mq := a.cfg.RabbitMQ; mq.Enabled {
		conn, err := amqp.Dial(mq.URL)
		if err != nil {
			return fmt.Errorf("dial rabbitmq: %w", err)
		}
		a.addResource("rabbitmq connection", func(context.Context) error { return conn.Close() })

		pub, err := notification.NewAMQPPublisher(conn, mq.Queue, a.log)
		if err != nil {
			return fmt.Errorf("init publisher: %w", err)
		}
		a.addResource("rabbitmq channel", func(context.Context) error { return pub.Close() })

		a.notifier = append(a.notifier, pub)
		a.log.Info("booking events published to rabbitmq", slog.String("queue", mq.Queue))
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram: %w", err)
	}
	if a.cfg.Telegram.BotToken != "" {
		a.notifier = append(a.notifier, tg)
	}

	return nil
}

func (a *App) initServices() {
	eventService := service.NewEventService(a.eventRepo, a.bookingRepo)
	bookingService := service.NewBookingService(a.bookingRepo, a.eventRepo, a.locker, a.notifier, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Reconciler.Interval,
		a.cfg.Reconciler.Settle,
		a.log,
	)

	h := handler.NewHandler(eventService, bookingService, a.scheduler)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Timeout(a.cfg.Booking.RequestTimeout),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Reconciler.Enabled {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, slog.LevelInfo, "HTTP server starting",
			slog.String("addr", a.httpServer.Addr),
			slog.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), slog.LevelInfo, "shutdown signal received")
	case err := <-errCh:
		a.closeResources(context.Background())
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), slog.LevelInfo, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(shutdownCtx, slog.LevelInfo, "HTTP server stopped")

	a.closeResources(shutdownCtx)

	a.log.LogAttrs(context.Background(), slog.LevelInfo, "app stopped")

	return nil
}

func (a *App) addResource(name string, fn func(ctx context.Context) error) {
	a.resources = append(a.resources, resource{name: name, close: fn})
}

func (a *App) closeResources(ctx context.Context) {
	for i := len(a.resources) - 1; i >= 0; i-- {
		r := a.resources[i]
		if err := r.close(ctx); err != nil {
			a.log.LogAttrs(ctx, slog.LevelError, "failed to close "+r.name,
				slog.String("error", err.Error()),
			)
			continue
		}
		a.log.LogAttrs(ctx, slog.LevelInfo, r.name+" closed")
	}
	a.resources = nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(postgres.Migrations)
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err = goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
