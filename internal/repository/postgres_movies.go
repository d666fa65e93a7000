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

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, genre, duration_minutes, rating, release_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateMovie
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, genre, duration_minutes, rating, release_year, created_at, updated_at
		FROM movies
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Duration,
			&movie.Rating,
			&movie.ReleaseYear,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, genre, duration_minutes, rating, release_year, created_at, updated_at
		FROM movies
		WHERE id = $1`

	return p.getOne(ctx, query, id)
}

func (p *PostgresMovieRepository) GetByTitleAndYear(
	ctx context.Context,
	title string,
	releaseYear int) (*domain.Movie, error) {

	query := `SELECT id, title, genre, duration_minutes, rating, release_year, created_at, updated_at
		FROM movies
		WHERE title = $1 AND release_year = $2`

	return p.getOne(ctx, query, title, releaseYear)
}

func (p *PostgresMovieRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Movie, error) {
	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, args...).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Rating,
		&movie.ReleaseYear,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, genre = $2, duration_minutes = $3, rating = $4, release_year = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at`

	err := p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
		movie.ID).Scan(&movie.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateMovie
		}

		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
