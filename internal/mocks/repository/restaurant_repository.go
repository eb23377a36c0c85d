package repository

import (
	"context"
	"testing"

	"tableplay/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a mock implementation of repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func NewMockRestaurantRepository(t *testing.T) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRestaurantRepository) CreateBatch(ctx context.Context, restaurants []*entity.Restaurant) error {
	args := m.Called(ctx, restaurants)

	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
