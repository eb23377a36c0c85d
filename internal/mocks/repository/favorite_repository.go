package repository

import (
	"context"
	"testing"

	"tableplay/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func NewMockFavoriteRepository(t *testing.T) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, restaurantID uint) (bool, error) {
	args := m.Called(ctx, userID, restaurantID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, restaurantID uint) (bool, error) {
	args := m.Called(ctx, userID, restaurantID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListRestaurantsByUser(ctx context.Context, userID uint) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}
