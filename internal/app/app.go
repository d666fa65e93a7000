package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cinetix/cinetix/internal/domain"
	"github.com/cinetix/cinetix/internal/repository"
	appvalidator "github.com/cinetix/cinetix/internal/validator"
	"github.com/cinetix/cinetix/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	DB               DBConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	validator *validator.Validate

	movieRepo    domain.MovieRepository
	showtimeRepo domain.ShowtimeRepository
	bookingRepo  domain.BookingRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	validator *validator.Validate,
	movieRepo domain.MovieRepository,
	showtimeRepo domain.ShowtimeRepository,
	bookingRepo domain.BookingRepository) *Application {

	return &Application{
		config:       cfg,
		logger:       logger,
		db:           db,
		validator:    validator,
		movieRepo:    movieRepo,
		showtimeRepo: showtimeRepo,
		bookingRepo:  bookingRepo,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	movieRepo := repository.NewPostgresMovieRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	app := NewApp(cfg, logger, db, validator, movieRepo, showtimeRepo, bookingRepo)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinetix-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Post("/", app.CreateMovieHandler)
		r.Get("/", app.ListMoviesHandler)
		r.Get("/{id}", app.GetMovieHandler)
		r.Patch("/{id}", app.UpdateMovieHandler)
		r.Delete("/{id}", app.DeleteMovieHandler)
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Post("/", app.CreateShowtimeHandler)
		r.Get("/", app.ListShowtimesHandler)
		r.Get("/{id}", app.GetShowtimeHandler)
		r.Patch("/{id}", app.UpdateShowtimeHandler)
		r.Delete("/{id}", app.DeleteShowtimeHandler)
		r.Get("/{id}/bookings", app.ListBookingsByShowtimeHandler)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBookingHandler)
		r.Get("/{id}", app.GetBookingHandler)
	})

	return r
}
