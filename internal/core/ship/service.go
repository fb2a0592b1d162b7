// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ship

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/platform/apperr"
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

func (service *Service) List(ctx context.Context, query url.Values) ([]*Ship, pagination.Meta, error) {
	spec, err := listquery.Translate(query, ListConfig)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	ships, total, err := service.repo.List(ctx, spec)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return ships, pagination.NewMeta(spec.Params, total), nil
}

func (service *Service) Get(ctx context.Context, id int) (*Ship, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	return service.repo.Get(ctx, id)
}

func (service *Service) Create(ctx context.Context, input Input) (*Ship, error) {
	input = clean(input)

	if err := check(input, true); err != nil {
		return nil, err
	}
	if err := service.guard.EnsureNameAvailable(ctx, Family, input.Name.Value(), 0); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("ship_created", slog.Int("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) Update(ctx context.Context, id int, input Input) (*Ship, error) {
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
	if input.Name.HasValue() {
		if err := service.guard.EnsureNameAvailable(ctx, Family, input.Name.Value(), id); err != nil {
			return nil, err
		}
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("ship_updated", slog.Int("id", id))
	return updated, nil
}

// Delete refuses while an organization sails the ship.
func (service *Service) Delete(ctx context.Context, id int) (catalog.Deleted, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return catalog.Deleted{}, err
	}
	if err := service.guard.EnsureNoDependents(ctx, Family, id); err != nil {
		return catalog.Deleted{}, err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return catalog.Deleted{}, err
	}

	service.logger.Warn("ship_deleted", slog.Int("id", id))
	return catalog.Deleted{ID: id}, nil
}

func clean(input Input) Input {
	input.Name = catalog.CleanName(input.Name)
	input.ShipType = catalog.CleanText(input.ShipType)
	input.Status = catalog.CleanName(input.Status)
	input.Description = catalog.CleanText(input.Description)
	input.ImageURL = catalog.CleanText(input.ImageURL)
	return input
}

func check(input Input, creating bool) error {
	validator := &validate.Validator{}

	if creating || input.Name.Provided() {
		validator.Required(FieldName, input.Name.Value()).MaxLen(FieldName, input.Name.Value(), NameMaxLength)
	}
	if input.ShipType.HasValue() {
		validator.MaxLen(FieldShipType, input.ShipType.Value(), ShipTypeMaxLength)
	}
	if input.Status.Provided() {
		validator.OneOf(FieldStatus, input.Status.Value(), Statuses...)
	}
	if input.Description.HasValue() {
		validator.MaxLen(FieldDescription, input.Description.Value(), DescriptionMaxLength)
	}
	if input.ImageURL.HasValue() {
		validator.URL(FieldImageURL, input.ImageURL.Value())
	}

	return validator.Err()
}
