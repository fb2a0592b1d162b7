// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/grandline/internal/core/character"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/integrity/integritytest"
	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, spec listquery.Spec) ([]*character.Character, int, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*character.Character), args.Int(1), args.Error(2)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*character.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.Character), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input character.Input) (*character.Character, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.Character), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, input character.Input) (*character.Character, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.Character), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListHaki(ctx context.Context, characterID int) ([]*character.HakiMastery, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*character.HakiMastery), args.Error(1)
}

func (m *MockRepository) UpsertHaki(ctx context.Context, characterID, hakiTypeID int, level string, isCurrent bool) error {
	return m.Called(ctx, characterID, hakiTypeID, level, isCurrent).Error(0)
}

func (m *MockRepository) DeleteHaki(ctx context.Context, characterID, hakiTypeID int) error {
	return m.Called(ctx, characterID, hakiTypeID).Error(0)
}

type fixture struct {
	repo    *MockRepository
	store   *integritytest.MockStore
	service *character.Service
}

func newFixture() *fixture {
	repo := &MockRepository{}
	store := integritytest.NewMockStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		repo:    repo,
		store:   store,
		service: character.NewService(repo, integrity.NewGuard(store), logger),
	}
}
