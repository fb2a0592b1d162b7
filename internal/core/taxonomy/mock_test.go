// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/grandline/internal/core/taxonomy"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/integrity/integritytest"
	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, spec listquery.Spec) ([]*taxonomy.Type, int, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*taxonomy.Type), args.Int(1), args.Error(2)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*taxonomy.Type, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Type), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input taxonomy.CreateInput) (*taxonomy.Type, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Type), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, input taxonomy.UpdateInput) (*taxonomy.Type, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Type), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fixture struct {
	repo    *MockRepository
	store   *integritytest.MockStore
	service *taxonomy.Service
}

func newFixture(kind taxonomy.Kind) *fixture {
	repo := &MockRepository{}
	store := integritytest.NewMockStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		repo:    repo,
		store:   store,
		service: taxonomy.NewService(kind, repo, integrity.NewGuard(store), logger),
	}
}
