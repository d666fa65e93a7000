package repository

import (
	"context"
	"errors"

	"github.com/cinetix/cinetix/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `INSERT INTO showtimes (movie_id, theater, starts_at, ends_at, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return p.db.QueryRow(ctx,
		query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartsAt,
		showtime.EndsAt,
		showtime.Price).Scan(&showtime.ID, &showtime.CreatedAt, &showtime.UpdatedAt)
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	query := `SELECT id, movie_id, theater, starts_at, ends_at, price, created_at, updated_at
		FROM showtimes
		ORDER BY theater, starts_at`

	return p.getMany(ctx, query)
}

func (p *PostgresShowtimeRepository) GetByTheater(ctx context.Context, theater string) ([]*domain.Showtime, error) {
	query := `SELECT id, movie_id, theater, starts_at, ends_at, price, created_at, updated_at
		FROM showtimes
		WHERE theater = $1
		ORDER BY starts_at`

	return p.getMany(ctx, query, theater)
}

func (p *PostgresShowtimeRepository) getMany(
	ctx context.Context,
	query string,
	args ...any) ([]*domain.Showtime, error) {

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []*domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.Theater,
			&showtime.StartsAt,
			&showtime.EndsAt,
			&showtime.Price,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, &showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `SELECT id, movie_id, theater, starts_at, ends_at, price, created_at, updated_at
		FROM showtimes
		WHERE id = $1`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartsAt,
		&showtime.EndsAt,
		&showtime.Price,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `UPDATE showtimes
		SET movie_id = $1, theater = $2, starts_at = $3, ends_at = $4, price = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at`

	err := p.db.QueryRow(ctx,
		query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartsAt,
		showtime.EndsAt,
		showtime.Price,
		showtime.ID).Scan(&showtime.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
