package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinetix/cinetix/api"
	"github.com/cinetix/cinetix/internal/domain"
)

func (app *Application) CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := &domain.Movie{
		Title:       domain.Normalize(input.Title),
		Genre:       domain.Normalize(input.Genre),
		Duration:    input.Duration,
		Rating:      input.Rating,
		ReleaseYear: input.ReleaseYear,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateMovie):
			app.editConflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toApiMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateMovieRequest

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

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.Title != nil {
		movie.Title = domain.Normalize(*input.Title)
	}
	if input.Genre != nil {
		movie.Genre = domain.Normalize(*input.Genre)
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}
	if input.ReleaseYear != nil {
		movie.ReleaseYear = *input.ReleaseYear
	}

	if input.Title != nil || input.ReleaseYear != nil {
		existing, err := app.movieRepo.GetByTitleAndYear(r.Context(), movie.Title, movie.ReleaseYear)
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			app.serverErrorResponse(w, r, err)
			return
		}

		if existing != nil && existing.ID != movie.ID {
			app.editConflictResponse(w, r, domain.ErrDuplicateMovie)
			return
		}
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateMovie):
			app.editConflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Showtimes referencing the movie are left in place on delete.
	err = app.movieRepo.Delete(r.Context(), id)
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
		Message: fmt.Sprintf("movie %d deleted", id),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovie(movie *domain.Movie) api.Movie {
	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		ReleaseYear: movie.ReleaseYear,
	}
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}
