package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cinetix/cinetix/api"
	"github.com/cinetix/cinetix/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

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

	if input.Price.Cmp(decimal.Zero) <= 0 {
		app.badRequestResponse(w, r, errors.New("price must be greater than zero"))
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("movie with id %d not found", input.MovieId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	showtime := &domain.Showtime{
		MovieID:  movie.ID,
		Theater:  domain.Normalize(input.Theater),
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		Price:    input.Price,
	}

	if err := checkShowtimeWindow(showtime, movie); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	overlapping, err := app.findOverlap(r.Context(), showtime, 0)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if overlapping != nil {
		app.badRequestResponse(w, r, overlapError(overlapping))
		return
	}

	err = app.showtimeRepo.Create(r.Context(), showtime)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiShowtime(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input api.UpdateShowtimeRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Empty() {
		app.badRequestResponse(w, r, errors.New("body must contain at least one field to update"))
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	prevTheater := showtime.Theater
	prevStartsAt := showtime.StartsAt
	prevEndsAt := showtime.EndsAt

	if input.MovieId != nil {
		showtime.MovieID = *input.MovieId
	}
	if input.Theater != nil {
		showtime.Theater = domain.Normalize(*input.Theater)
	}
	if input.StartsAt != nil {
		showtime.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		showtime.EndsAt = *input.EndsAt
	}
	if input.Price != nil {
		showtime.Price = *input.Price
	}

	if showtime.Price.Cmp(decimal.Zero) <= 0 {
		app.badRequestResponse(w, r, errors.New("price must be greater than zero"))
		return
	}

	// The movie is re-resolved even when unchanged: a referenced movie may
	// have been deleted or its duration updated since the showtime was created.
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

	if err := checkShowtimeWindow(showtime, movie); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	changed := showtime.Theater != prevTheater ||
		!showtime.StartsAt.Equal(prevStartsAt) ||
		!showtime.EndsAt.Equal(prevEndsAt)

	if changed {
		overlapping, err := app.findOverlap(r.Context(), showtime, showtime.ID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		if overlapping != nil {
			app.badRequestResponse(w, r, overlapError(overlapping))
			return
		}
	}

	err = app.showtimeRepo.Update(r.Context(), showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShowtime(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShowtime(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShowtimesHandler(w http.ResponseWriter, r *http.Request) {
	showtimes, err := app.showtimeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiShowtimes := make([]api.Showtime, len(showtimes))
	for i, showtime := range showtimes {
		apiShowtimes[i] = toApiShowtime(showtime)
	}

	resp := api.ShowtimeListResponse{
		Showtimes: apiShowtimes,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.showtimeRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MessageResponse{
		Message: fmt.Sprintf("showtime %d deleted", id),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkShowtimeWindow enforces strict time ordering and the exact duration
// match between a showtime window and its movie's runtime.
func checkShowtimeWindow(showtime *domain.Showtime, movie *domain.Movie) error {
	if !showtime.StartsAt.Before(showtime.EndsAt) {
		return errors.New("start time must be strictly before end time")
	}

	window := showtime.EndsAt.Sub(showtime.StartsAt)
	expected := time.Duration(movie.Duration) * time.Minute

	if window != expected {
		got := strconv.FormatFloat(window.Minutes(), 'f', -1, 64)
		return fmt.Errorf("showtime duration must match movie duration: expected %d minutes, got %s", movie.Duration, got)
	}

	return nil
}

// findOverlap returns the first stored showtime in the same theater whose time
// window conflicts with the given one, ignoring the showtime with excludeID.
func (app *Application) findOverlap(
	ctx context.Context,
	showtime *domain.Showtime,
	excludeID int) (*domain.Showtime, error) {

	others, err := app.showtimeRepo.GetByTheater(ctx, showtime.Theater)
	if err != nil {
		return nil, err
	}

	for _, other := range others {
		if other.ID == excludeID {
			continue
		}

		if showtime.Overlaps(*other) {
			return other, nil
		}
	}

	return nil, nil
}

func overlapError(other *domain.Showtime) error {
	return fmt.Errorf(
		"showtime overlaps with an existing showtime in theater %q (%s - %s)",
		other.Theater,
		other.StartsAt.Format(time.RFC3339),
		other.EndsAt.Format(time.RFC3339),
	)
}

func toApiShowtime(showtime *domain.Showtime) api.Showtime {
	return api.Showtime{
		Id:       showtime.ID,
		MovieId:  showtime.MovieID,
		Theater:  showtime.Theater,
		StartsAt: showtime.StartsAt,
		EndsAt:   showtime.EndsAt,
		Price:    showtime.Price,
	}
}
