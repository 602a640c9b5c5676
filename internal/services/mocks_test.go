package services_test

import (
	"context"

	"shop/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repositories.Repository.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) Find(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Query() repositories.Query[T] {
	args := m.Called()
	return args.Get(0).(repositories.Query[T])
}

func (m *MockRepository[T]) Add(entity *T) {
	m.Called(entity)
}

func (m *MockRepository[T]) Update(entity *T) {
	m.Called(entity)
}

func (m *MockRepository[T]) Remove(entity *T) {
	m.Called(entity)
}

func (m *MockRepository[T]) Increment(id uuid.UUID, counter repositories.Counter[T], delta int) {
	m.Called(id, counter.Column, delta)
}

// MockUnitOfWork is a mock implementation of repositories.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Commit(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}
