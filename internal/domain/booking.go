package domain

import (
	"context"
	"time"
)

// TheaterCapacity is the fixed number of bookable seats per showtime.
const TheaterCapacity = 100

type Booking struct {
	ID           int
	Reference    string
	ShowtimeID   int
	MovieID      int
	SeatNumber   int
	CustomerName string
	CreatedAt    time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByShowtimeId(ctx context.Context, showtimeId int) ([]*Booking, error)
	CountByShowtimeId(ctx context.Context, showtimeId int) (int, error)
}
