// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package integritytest provides a testify mock of [integrity.Store].
package integritytest

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore implements integrity.Store.
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a MockStore.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Exists(ctx context.Context, table string, id int) (bool, error) {
	args := m.Called(ctx, table, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Taken(ctx context.Context, table, column string, value any, excludeID int) (bool, error) {
	args := m.Called(ctx, table, column, value, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, table, column string, id int) (int, error) {
	args := m.Called(ctx, table, column, id)
	return args.Int(0), args.Error(1)
}
