package mocks

import (
	"context"

	"github.com/cinetix/cinetix/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)

	if booking := args.Get(0); booking != nil {
		return booking.(*domain.Booking), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookingRepo) GetByShowtimeId(ctx context.Context, showtimeId int) ([]*domain.Booking, error) {
	args := m.Called(ctx, showtimeId)

	if bookings := args.Get(0); bookings != nil {
		return bookings.([]*domain.Booking), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookingRepo) CountByShowtimeId(ctx context.Context, showtimeId int) (int, error) {
	args := m.Called(ctx, showtimeId)
	return args.Int(0), args.Error(1)
}
