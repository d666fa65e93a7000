// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	ReleaseYear int     `json:"releaseYear" validate:"required,gte=1888"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Genre       *string  `json:"genre" validate:"omitempty,max=100"`
	Duration    *int     `json:"duration" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	ReleaseYear *int     `json:"releaseYear" validate:"omitempty,gte=1888"`
}

func (r UpdateMovieRequest) Empty() bool {
	return r.Title == nil && r.Genre == nil && r.Duration == nil && r.Rating == nil && r.ReleaseYear == nil
}

type Movie struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type CreateShowtimeRequest struct {
	MovieId  int             `json:"movieId" validate:"required,min=1"`
	Theater  string          `json:"theater" validate:"required,max=255"`
	StartsAt time.Time       `json:"startsAt" validate:"required"`
	EndsAt   time.Time       `json:"endsAt" validate:"required"`
	Price    decimal.Decimal `json:"price"`
}

type UpdateShowtimeRequest struct {
	MovieId  *int             `json:"movieId" validate:"omitempty,min=1"`
	Theater  *string          `json:"theater" validate:"omitempty,max=255"`
	StartsAt *time.Time       `json:"startsAt"`
	EndsAt   *time.Time       `json:"endsAt"`
	Price    *decimal.Decimal `json:"price"`
}

func (r UpdateShowtimeRequest) Empty() bool {
	return r.MovieId == nil && r.Theater == nil && r.StartsAt == nil && r.EndsAt == nil && r.Price == nil
}

type Showtime struct {
	Id       int             `json:"id"`
	MovieId  int             `json:"movieId"`
	Theater  string          `json:"theater"`
	StartsAt time.Time       `json:"startsAt"`
	EndsAt   time.Time       `json:"endsAt"`
	Price    decimal.Decimal `json:"price"`
}

type ShowtimeListResponse struct {
	Showtimes []Showtime `json:"showtimes"`
}

type CreateBookingRequest struct {
	ShowtimeId   int    `json:"showtimeId" validate:"required,min=1"`
	SeatNumber   int    `json:"seatNumber" validate:"required,min=1,max=100"`
	CustomerName string `json:"customerName" validate:"required,max=100,person_name"`
}

type Booking struct {
	Id           int       `json:"id"`
	Reference    string    `json:"reference"`
	ShowtimeId   int       `json:"showtimeId"`
	MovieId      int       `json:"movieId"`
	MovieTitle   string    `json:"movieTitle,omitempty"`
	SeatNumber   int       `json:"seatNumber"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
