package integration_test

import (
	"io"
	"log/slog"

	"github.com/cinetix/cinetix/internal/app"
	"github.com/cinetix/cinetix/internal/repository"
	appvalidator "github.com/cinetix/cinetix/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		validator,
		movieRepo,
		showtimeRepo,
		bookingRepo,
	)

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
