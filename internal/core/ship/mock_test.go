// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ship_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/grandline/internal/core/ship"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/integrity/integritytest"
	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, spec listquery.Spec) ([]*ship.Ship, int, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*ship.Ship), args.Int(1), args.Error(2)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*ship.Ship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input ship.Input) (*ship.Ship, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, input ship.Input) (*ship.Ship, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type fixture struct {
	repo    *MockRepository
	store   *integritytest.MockStore
	service *ship.Service
}

func newFixture() *fixture {
	repo := &MockRepository{}
	store := integritytest.NewMockStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		repo:    repo,
		store:   store,
		service: ship.NewService(repo, integrity.NewGuard(store), logger),
	}
}
