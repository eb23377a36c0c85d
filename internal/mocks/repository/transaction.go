package repository

import (
	"context"
	"testing"

	"tableplay/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// When Factory is set, Execute invokes fn with it and returns fn's error unless
// the expectation supplies a non-nil error of its own.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.Factory != nil {
		return fn(m.Factory)
	}

	return nil
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) NewRestaurantRepository() repository.RestaurantRepository {
	return m.Called().Get(0).(repository.RestaurantRepository)
}

func (m *MockRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return m.Called().Get(0).(repository.FavoriteRepository)
}
