package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinetix/cinetix/api"
	"github.com/cinetix/cinetix/internal/domain"
	"github.com/google/uuid"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), input.ShowtimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("showtime with id %d not found", input.ShowtimeId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// The movie reference is verified independently rather than trusted from
	// the scheduler: movies can be deleted out from under a showtime.
	movie, err := app.movieRepo.GetById(r.Context(), showtime.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("movie with id %d not found", showtime.MovieID))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	count, err := app.bookingRepo.CountByShowtimeId(r.Context(), showtime.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if count >= domain.TheaterCapacity {
		logger.Warn("booking rejected: theater is full", "showtime_id", showtime.ID, "bookings", count)
		app.badRequestResponse(w, r, errors.New("theater is full"))
		return
	}

	bookings, err := app.bookingRepo.GetByShowtimeId(r.Context(), showtime.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	customerName := domain.Normalize(input.CustomerName)

	for _, booking := range bookings {
		if booking.SeatNumber == input.SeatNumber && booking.CustomerName == customerName {
			app.editConflictResponse(w, r, fmt.Errorf("you have already booked seat %d for this showtime", input.SeatNumber))
			return
		}
	}

	for _, booking := range bookings {
		if booking.SeatNumber == input.SeatNumber {
			app.editConflictResponse(w, r, fmt.Errorf("seat %d is already taken", input.SeatNumber))
			return
		}
	}

	booking := &domain.Booking{
		Reference:    uuid.NewString(),
		ShowtimeID:   showtime.ID,
		MovieID:      movie.ID,
		SeatNumber:   input.SeatNumber,
		CustomerName: customerName,
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			// Lost the race between the seat checks above and the insert.
			logger.Warn("booking conflict on insert", "showtime_id", showtime.ID, "seat", input.SeatNumber)
			app.editConflictResponse(w, r, fmt.Errorf("seat %d is already taken", input.SeatNumber))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toApiBooking(booking)
	resp.MovieTitle = movie.Title

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiBooking(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListBookingsByShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("showtime with id %d not found", id))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	bookings, err := app.bookingRepo.GetByShowtimeId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiBookings := make([]api.Booking, len(bookings))
	for i, booking := range bookings {
		apiBookings[i] = toApiBooking(booking)
	}

	resp := api.BookingListResponse{
		Bookings: apiBookings,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(booking *domain.Booking) api.Booking {
	return api.Booking{
		Id:           booking.ID,
		Reference:    booking.Reference,
		ShowtimeId:   booking.ShowtimeID,
		MovieId:      booking.MovieID,
		SeatNumber:   booking.SeatNumber,
		CustomerName: booking.CustomerName,
		CreatedAt:    booking.CreatedAt,
	}
}
