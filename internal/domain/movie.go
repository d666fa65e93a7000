package domain

import (
	"context"
	"strings"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Genre       string
	Duration    int
	Rating      float64
	ReleaseYear int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize is applied to titles, genres, theater names and customer names
// before storage and comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	GetByTitleAndYear(ctx context.Context, title string, releaseYear int) (*Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
