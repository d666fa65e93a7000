package mocks

import (
	"context"

	"github.com/cinetix/cinetix/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	CreateFunc       func(ctx context.Context, showtime *domain.Showtime) error
	GetAllFunc       func(ctx context.Context) ([]*domain.Showtime, error)
	GetByIdFunc      func(ctx context.Context, id int) (*domain.Showtime, error)
	GetByTheaterFunc func(ctx context.Context, theater string) ([]*domain.Showtime, error)
	UpdateFunc       func(ctx context.Context, showtime *domain.Showtime) error
	DeleteFunc       func(ctx context.Context, id int) error
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeRepo) GetByTheater(ctx context.Context, theater string) ([]*domain.Showtime, error) {
	return m.GetByTheaterFunc(ctx, theater)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	return m.UpdateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
