// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package devilfruit

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/core/character"
	"github.com/taibuivan/grandline/internal/core/taxonomy"
	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/internal/platform/validate"
	"github.com/taibuivan/grandline/pkg/pagination"
)

type Service struct {
	repo   Repository
	guard  *integrity.Guard
	logger *slog.Logger
}

func NewService(repo Repository, guard *integrity.Guard, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, logger: logger}
}

func (service *Service) List(ctx context.Context, query url.Values) ([]*DevilFruit, pagination.Meta, error) {
	spec, err := listquery.Translate(query, ListConfig)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	fruits, total, err := service.repo.List(ctx, spec)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return fruits, pagination.NewMeta(spec.Params, total), nil
}

func (service *Service) Get(ctx context.Context, id int) (*DevilFruit, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	return service.repo.Get(ctx, id)
}

func (service *Service) Create(ctx context.Context, input Input) (*DevilFruit, error) {
	input = clean(input)

	if err := check(input, true); err != nil {
		return nil, err
	}
	if err := service.ensureReferences(ctx, input, 0); err != nil {
		return nil, err
	}
	if err := service.guard.EnsureNameAvailable(ctx, Family, input.Name.Value(), 0); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("devil_fruit_created", slog.Int("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) Update(ctx context.Context, id int, input Input) (*DevilFruit, error) {
	if input.Empty() {
		return nil, apperr.NoFieldsProvided()
	}
	input = clean(input)

	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	if err := check(input, false); err != nil {
		return nil, err
	}
	if err := service.ensureReferences(ctx, input, id); err != nil {
		return nil, err
	}
	if input.Name.HasValue() {
		if err := service.guard.EnsureNameAvailable(ctx, Family, input.Name.Value(), id); err != nil {
			return nil, err
		}
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("devil_fruit_updated", slog.Int("id", id))
	return updated, nil
}

func (service *Service) Delete(ctx context.Context, id int) (catalog.Deleted, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return catalog.Deleted{}, err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return catalog.Deleted{}, err
	}

	service.logger.Warn("devil_fruit_deleted", slog.Int("id", id))
	return catalog.Deleted{ID: id}, nil
}

// ensureReferences resolves every referenced id; excludeID is the fruit being updated.
func (service *Service) ensureReferences(ctx context.Context, input Input, excludeID int) error {
	if input.TypeID.HasValue() {
		if err := service.guard.EnsureReference(ctx, taxonomy.FruitTypes.Family(), FieldTypeID, input.TypeID.Value()); err != nil {
			return err
		}
	}

	if input.CurrentUserID.HasValue() {
		userID := input.CurrentUserID.Value()
		if err := service.guard.EnsureReference(ctx, character.Family, FieldCurrentUserID, userID); err != nil {
			return err
		}
		if err := service.guard.EnsureUnique(ctx, Family, schema.DevilFruits.CurrentUserID, userID, excludeID, fruitAlreadyAssigned()); err != nil {
			return err
		}
	}

	for _, userID := range input.PreviousUsers.Value() {
		if err := service.guard.EnsureReference(ctx, character.Family, FieldPreviousUsers, userID); err != nil {
			return err
		}
	}
	return nil
}

func clean(input Input) Input {
	input.Name = catalog.CleanName(input.Name)
	input.Description = catalog.CleanText(input.Description)
	input.ImageURL = catalog.CleanText(input.ImageURL)
	return input
}

func check(input Input, creating bool) error {
	validator := &validate.Validator{}

	if creating || input.Name.Provided() {
		validator.Required(FieldName, input.Name.Value()).MaxLen(FieldName, input.Name.Value(), NameMaxLength)
	}

	// 1. The fruit type is mandatory and can never be cleared
	switch {
	case input.TypeID.HasValue():
		validator.PositiveID(FieldTypeID, input.TypeID.Value())
	case creating || input.TypeID.IsNull():
		validator.Custom(FieldTypeID, true, "Type id is required")
	}

	if input.CurrentUserID.HasValue() {
		validator.PositiveID(FieldCurrentUserID, input.CurrentUserID.Value())
	}

	// 2. Previous users keep their order and never repeat
	seen := make(map[int]bool, len(input.PreviousUsers.Value()))
	for _, userID := range input.PreviousUsers.Value() {
		if userID < 1 {
			validator.Custom(FieldPreviousUsers, true, "Previous users must be positive character ids")
			break
		}
		if seen[userID] {
			validator.Custom(FieldPreviousUsers, true, fmt.Sprintf("Character %d appears more than once in previous users", userID))
			break
		}
		seen[userID] = true
	}

	if input.Description.HasValue() {
		validator.MaxLen(FieldDescription, input.Description.Value(), DescriptionMaxLength)
	}
	if input.ImageURL.HasValue() {
		validator.URL(FieldImageURL, input.ImageURL.Value())
	}

	return validator.Err()
}
