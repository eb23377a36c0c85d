// Package service provides testify mocks of the domain service ports.
package service

import (
	"context"
	"testing"
	"time"

	"tableplay/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	args := m.Called(subject, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (string, error) {
	args := m.Called(token)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockCatalogCache is a mock implementation of service.CatalogCache.
type MockCatalogCache struct {
	mock.Mock
}

func NewMockCatalogCache(t *testing.T) *MockCatalogCache {
	m := &MockCatalogCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogCache) Get(ctx context.Context) ([]*entity.Restaurant, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Bool(1)
}

func (m *MockCatalogCache) Set(ctx context.Context, restaurants []*entity.Restaurant) {
	m.Called(ctx, restaurants)
}

func (m *MockCatalogCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
