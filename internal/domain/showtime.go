package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID        int
	MovieID   int
	Theater   string
	StartsAt  time.Time
	EndsAt    time.Time
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the window [s.StartsAt, s.EndsAt) conflicts with
// [other.StartsAt, other.EndsAt). Back-to-back windows that touch at a single
// instant do not conflict.
func (s Showtime) Overlaps(other Showtime) bool {
	startInside := !s.StartsAt.Before(other.StartsAt) && s.StartsAt.Before(other.EndsAt)
	endInside := s.EndsAt.After(other.StartsAt) && !s.EndsAt.After(other.EndsAt)
	covers := !s.StartsAt.After(other.StartsAt) && !s.EndsAt.Before(other.EndsAt)

	return startInside || endInside || covers
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetAll(ctx context.Context) ([]*Showtime, error)
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetByTheater(ctx context.Context, theater string) ([]*Showtime, error)
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
