package repository

import (
	"context"
	"errors"

	"github.com/cinetix/cinetix/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `INSERT INTO bookings (reference, showtime_id, movie_id, seat_number, customer_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		booking.Reference,
		booking.ShowtimeID,
		booking.MovieID,
		booking.SeatNumber,
		booking.CustomerName).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		// The unique index on (showtime_id, seat_number) is the real guard
		// against two requests racing past the seat checks.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatAlreadyTaken
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT id, reference, showtime_id, movie_id, seat_number, customer_name, created_at
		FROM bookings
		WHERE id = $1`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.ShowtimeID,
		&booking.MovieID,
		&booking.SeatNumber,
		&booking.CustomerName,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetByShowtimeId(ctx context.Context, showtimeId int) ([]*domain.Booking, error) {
	query := `SELECT id, reference, showtime_id, movie_id, seat_number, customer_name, created_at
		FROM bookings
		WHERE showtime_id = $1
		ORDER BY seat_number`

	rows, err := p.db.Query(ctx, query, showtimeId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.ShowtimeID,
			&booking.MovieID,
			&booking.SeatNumber,
			&booking.CustomerName,
			&booking.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) CountByShowtimeId(ctx context.Context, showtimeId int) (int, error) {
	query := `SELECT count(*) FROM bookings WHERE showtime_id = $1`

	var count int

	err := p.db.QueryRow(ctx, query, showtimeId).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
