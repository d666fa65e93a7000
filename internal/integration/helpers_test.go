package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE bookings, showtimes, movies RESTART IDENTITY")
	require.NoError(t, err)
}

type testMovie struct {
	Title       string
	Genre       string
	Duration    int
	Rating      float64
	ReleaseYear int
}

func defaultTestMovie() testMovie {
	return testMovie{
		Title:       TestMovieTitle,
		Genre:       TestMovieGenre,
		Duration:    TestMovieDuration,
		Rating:      TestMovieRating,
		ReleaseYear: TestMovieReleaseYear,
	}
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, m testMovie) int {
	t.Helper()

	var id int
	err := db.QueryRow(
		context.Background(),
		`INSERT INTO movies (title, genre, duration_minutes, rating, release_year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		m.Title, m.Genre, m.Duration, m.Rating, m.ReleaseYear,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestShowtime(t testing.TB, db *pgxpool.Pool, movieId int, theater string, startsAt, endsAt time.Time) int {
	t.Helper()

	var id int
	err := db.QueryRow(
		context.Background(),
		`INSERT INTO showtimes (movie_id, theater, starts_at, ends_at, price)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		movieId, theater, startsAt, endsAt, TestShowtimePrice,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestBooking(t testing.TB, db *pgxpool.Pool, showtimeId, movieId, seatNumber int, customerName string) {
	t.Helper()

	_, err := db.Exec(
		context.Background(),
		`INSERT INTO bookings (reference, showtime_id, movie_id, seat_number, customer_name)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), showtimeId, movieId, seatNumber, customerName,
	)
	require.NoError(t, err)
}
