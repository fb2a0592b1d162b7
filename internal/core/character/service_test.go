// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/core/character"
	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/pkg/optional"
)

/*
TestService_Create verifies cleaning, reference checks and the duplicate check.
*/
func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the cleaned row", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "races", 1).Return(true, nil)
		f.store.On("Taken", ctx, "characters", "name", "Monkey D. Luffy", 0).Return(false, nil)

		want := character.Input{
			Name:    optional.Of("Monkey D. Luffy"),
			Epithet: optional.Null[string](),
			RaceID:  optional.Of(1),
			Bounty:  optional.Of(int64(3000000000)),
		}
		f.repo.On("Create", ctx, want).Return(&character.Character{ID: 1, Name: "Monkey D. Luffy", IsAlive: true}, nil)

		created, err := f.service.Create(ctx, character.Input{
			Name:    optional.Of(" Monkey D. Luffy "),
			Epithet: optional.Of("  "),
			RaceID:  optional.Of(1),
			Bounty:  optional.Of(int64(3000000000)),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.True(t, created.IsAlive)
		f.repo.AssertExpectations(t)
	})

	t.Run("unknown race is a field error", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "races", 99).Return(false, nil)

		_, err := f.service.Create(ctx, character.Input{Name: optional.Of("Zoro"), RaceID: optional.Of(99)})

		assert.True(t, apperr.HasCode(err, "INVALID_RACE_ID"), "got %v", err)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation runs before any lookup", func(t *testing.T) {
		tests := []struct {
			name     string
			input    character.Input
			wantCode string
		}{
			{"missing name", character.Input{Bounty: optional.Of(int64(1))}, "INVALID_NAME"},
			{"long name", character.Input{Name: optional.Of(strings.Repeat("A", 101))}, "INVALID_NAME"},
			{"negative bounty", character.Input{Name: optional.Of("Buggy"), Bounty: optional.Of(int64(-1))}, "INVALID_BOUNTY"},
			{"age above range", character.Input{Name: optional.Of("Kaido"), Age: optional.Of(1001)}, "INVALID_AGE"},
			{"null is_alive", character.Input{Name: optional.Of("Ace"), IsAlive: optional.Null[bool]()}, "INVALID_IS_ALIVE"},
			{"bad url", character.Input{Name: optional.Of("Sanji"), ImageURL: optional.Of("not a url")}, "INVALID_IMAGE_URL"},
			{"zero race id", character.Input{Name: optional.Of("Chopper"), RaceID: optional.Of(0)}, "INVALID_RACE_ID"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()

				_, err := f.service.Create(ctx, tt.input)

				assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
				assert.Empty(t, f.store.Calls)
				assert.Empty(t, f.repo.Calls)
			})
		}
	})
}

/*
TestService_Update verifies partial update semantics.
*/
func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted fields are untouched and null clears", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 4).Return(true, nil)

		input := character.Input{Bounty: optional.Of(int64(1100000000)), Origin: optional.Null[string]()}
		f.repo.On("Update", ctx, 4, input).Return(&character.Character{ID: 4, Name: "Nico Robin"}, nil)

		updated, err := f.service.Update(ctx, 4, input)

		require.NoError(t, err)
		assert.Equal(t, "Nico Robin", updated.Name)
		f.store.AssertNotCalled(t, "Taken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("null name is rejected", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 4).Return(true, nil)

		_, err := f.service.Update(ctx, 4, character.Input{Name: optional.Null[string]()})
		assert.True(t, apperr.HasCode(err, "INVALID_NAME"))
	})

	t.Run("rename excludes the row itself", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 2).Return(true, nil)
		f.store.On("Taken", ctx, "characters", "name", "Roronoa Zoro", 2).Return(false, nil)
		f.repo.On("Update", ctx, 2, mock.Anything).Return(&character.Character{ID: 2}, nil)

		_, err := f.service.Update(ctx, 2, character.Input{Name: optional.Of("Roronoa Zoro")})
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 404).Return(false, nil)

		_, err := f.service.Update(ctx, 404, character.Input{Age: optional.Of(19)})
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

/*
TestService_Delete verifies the dependents breakdown across the four referencing tables.
*/
func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("dependents block the delete", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 1).Return(true, nil)
		f.store.On("Count", ctx, "devil_fruits", "current_user_id", 1).Return(1, nil)
		f.store.On("Count", ctx, "organizations", "leader_id", 1).Return(1, nil)
		f.store.On("Count", ctx, "organization_members", "character_id", 1).Return(1, nil)
		f.store.On("Count", ctx, "character_haki", "character_id", 1).Return(2, nil)

		_, err := f.service.Delete(ctx, 1)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeHasAssociations, ae.Code)
		assert.Equal(t, 5, ae.Count)
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("free character is removed", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 7).Return(true, nil)
		f.store.On("Count", ctx, mock.Anything, mock.Anything, 7).Return(0, nil)
		f.repo.On("Delete", ctx, 7).Return(nil)

		deleted, err := f.service.Delete(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, 7, deleted.ID)
		assert.Zero(t, deleted.Dependents)
	})
}

/*
TestService_SetHaki verifies defaults, level validation and parent checks.
*/
func TestService_SetHaki(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to a current basic mastery", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 1).Return(true, nil)
		f.store.On("Exists", ctx, "haki_types", 3).Return(true, nil)
		f.repo.On("UpsertHaki", ctx, 1, 3, "basic", true).Return(nil)
		f.repo.On("ListHaki", ctx, 1).Return([]*character.HakiMastery{{CharacterID: 1, MasteryLevel: "basic", IsCurrent: true}}, nil)

		masteries, err := f.service.SetHaki(ctx, 1, 3, character.HakiInput{})

		require.NoError(t, err)
		assert.Len(t, masteries, 1)
		f.repo.AssertExpectations(t)
	})

	t.Run("unknown level", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, mock.Anything, mock.Anything).Return(true, nil)
		level := "legendary"

		_, err := f.service.SetHaki(ctx, 1, 3, character.HakiInput{MasteryLevel: &level})

		assert.True(t, apperr.HasCode(err, "INVALID_MASTERY_LEVEL"))
		f.repo.AssertNotCalled(t, "UpsertHaki", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing haki type", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "characters", 1).Return(true, nil)
		f.store.On("Exists", ctx, "haki_types", 9).Return(false, nil)

		_, err := f.service.SetHaki(ctx, 1, 9, character.HakiInput{})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeNotFound, ae.Code)
		assert.Contains(t, ae.Message, "Haki type")
	})
}

/*
TestService_DuplicateName verifies that a taken name blocks both create and rename before any write.
*/
func TestService_DuplicateName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		write func(service *character.Service) error
	}{
		{"create", func(service *character.Service) error {
			_, err := service.Create(ctx, character.Input{Name: optional.Of("Monkey D. Luffy")})
			return err
		}},
		{"rename", func(service *character.Service) error {
			_, err := service.Update(ctx, 2, character.Input{Name: optional.Of("Monkey D. Luffy")})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.store.On("Exists", ctx, "characters", 2).Return(true, nil)
			f.store.On("Taken", ctx, "characters", "name", "Monkey D. Luffy", mock.Anything).Return(true, nil)

			err := tt.write(f.service)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeDuplicateName, ae.Code)
			assert.Equal(t, "Character name already exists", ae.Message)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

/*
TestService_Update_Empty verifies NO_FIELDS_PROVIDED before any lookup.
*/
func TestService_Update_Empty(t *testing.T) {
	f := newFixture()

	_, err := f.service.Update(context.Background(), 1, character.Input{})

	assert.True(t, apperr.HasCode(err, apperr.CodeNoFieldsProvided))
	assert.Empty(t, f.store.Calls)
	assert.Empty(t, f.repo.Calls)
}
