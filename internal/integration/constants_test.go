package integration_test

const (
	// Movie related constants
	TestMovieTitle       = "inception"
	TestMovieGenre       = "sci-fi"
	TestMovieDuration    = 120
	TestMovieRating      = 8.8
	TestMovieReleaseYear = 2010

	// Showtime related constants
	TestTheater       = "grand cinema"
	TestShowtimePrice = "12.50"

	// Booking related constants
	TestCustomerName = "alice smith"
)
