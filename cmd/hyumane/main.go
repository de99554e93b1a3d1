package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migrates "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/hyumane/hyumane/internal/backend/rest"
	"github.com/hyumane/hyumane/internal/backend/ws"
	"github.com/hyumane/hyumane/internal/chat"
	"github.com/hyumane/hyumane/internal/consumer/liveupdate"
	"github.com/hyumane/hyumane/internal/engine"
	"github.com/hyumane/hyumane/internal/events"
	"github.com/hyumane/hyumane/internal/feed"
	"github.com/hyumane/hyumane/internal/server"
	"github.com/hyumane/hyumane/internal/session"
	sessionsqlite "github.com/hyumane/hyumane/internal/session/sqlite"
	"github.com/hyumane/hyumane/internal/verification"
	"github.com/hyumane/hyumane/internal/view"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"127.0.0.1" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`

	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Backend        string        `long:"backend" env:"BACKEND" default:"http://localhost:9000" description:"remote backend base url"`
	BackendTimeout time.Duration `long:"backend.timeout" env:"BACKEND_TIMEOUT" default:"10s" description:"timeout for requests to the backend"`

	Stream              string        `long:"stream" env:"STREAM" default:"ws://localhost:9000/v1/live" description:"live updates websocket url"`
	StreamRetryInterval time.Duration `long:"stream.retry_interval" env:"STREAM_RETRY_INTERVAL" default:"2s" description:"interval to be waited before resubscribing"`

	Sqlite           string `long:"sqlite" env:"SQLITE" default:"hyumane.db" description:"sqlite database file"`
	SqliteMigrations string `long:"sqlite.migrations" env:"SQLITE_MIGRATIONS" default:"migrations/sqlite" description:"sqlite migrations directory"`

	VerificationSecret string `long:"verification.secret" env:"VERIFICATION_SECRET" required:"true" description:"secret for validating identity widget tokens"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Hyumane"
	parser.LongDescription = "Hyumane client daemon"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		hook, err := sentrylogrus.New([]logrus.Level{
			logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel,
		}, sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			ServerName:       "hyumane",
		})

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()

	b := rest.New(opts.Backend, opts.BackendTimeout)
	store := sessionsqlite.New(db)
	gate := session.NewGate(store, b)
	verifier := verification.New(store, []byte(opts.VerificationSecret))

	ctx, cancel := context.WithCancel(context.Background())

	var (
		feedController *feed.Controller
		chatController *chat.Controller
	)

	gr, _ := errgroup.WithContext(ctx)

	res := gate.Resolve(ctx)
	logrus.WithField("status", res.Status).Info("session resolved")

	if res.Status == session.StatusReady {
		state := view.NewState()
		e := engine.New()

		feedController = feed.New(*res.Actor, b, state, e)
		chatController = chat.New(*res.Actor, b, state, e)

		c := liveupdate.New(ws.New(opts.Stream), feedController, opts.StreamRetryInterval)
		gr.Go(func() error {
			return c.Run(ctx)
		})
	} else {
		// protected routes answer with the gate status; a restart after
		// verification brings the page controllers up
		logrus.Info("actor is not ready, feed and chat stay offline")
	}

	r := chi.NewMux()
	server.SetupRouter(r, opts.RequestTimeout,
		gate, verifier,
		feedController, chatController,
		events.New(b),
	)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx) // nolint

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("hyumane unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("sqlite", opts.Sqlite)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open sqlite database")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping sqlite database")
	}

	driver, err := migrates.WithInstance(db, &migrates.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.SqliteMigrations), "sqlite", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
