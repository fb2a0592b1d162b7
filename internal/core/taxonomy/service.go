// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

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
	"github.com/taibuivan/grandline/pkg/sanitize"
)

// Service runs the catalog operations of one kind.
type Service struct {
	kind   Kind
	repo   Repository
	guard  *integrity.Guard
	logger *slog.Logger
}

func NewService(kind Kind, repo Repository, guard *integrity.Guard, logger *slog.Logger) *Service {
	return &Service{
		kind:   kind,
		repo:   repo,
		guard:  guard,
		logger: logger,
	}
}

// Kind returns the family served by the service.
func (service *Service) Kind() Kind {
	return service.kind
}

func (service *Service) List(ctx context.Context, query url.Values) ([]*Type, pagination.Meta, error) {
	spec, err := listquery.Translate(query, ListConfig)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	types, total, err := service.repo.List(ctx, spec)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return types, pagination.NewMeta(spec.Params, total), nil
}

func (service *Service) Get(ctx context.Context, id int) (*Type, error) {
	if err := service.guard.EnsureExists(ctx, service.kind.Family(), id); err != nil {
		return nil, err
	}
	return service.repo.Get(ctx, id)
}

func (service *Service) Create(ctx context.Context, input CreateInput) (*Type, error) {
	input.Name = sanitize.Text(input.Name)
	input.Description = sanitize.NullablePtr(input.Description)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, NameMaxLength)
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, DescriptionMaxLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.guard.EnsureNameAvailable(ctx, service.kind.Family(), input.Name, 0); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info(service.kind.Event+"_created", slog.Int("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) Update(ctx context.Context, id int, input UpdateInput) (*Type, error) {
	if input.Empty() {
		return nil, apperr.NoFieldsProvided()
	}

	input.Name = catalog.CleanName(input.Name)
	input.Description = catalog.CleanText(input.Description)

	if err := service.guard.EnsureExists(ctx, service.kind.Family(), id); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Name.Provided() {
		validator.Required(FieldName, input.Name.Value()).MaxLen(FieldName, input.Name.Value(), NameMaxLength)
	}
	if input.Description.HasValue() {
		validator.MaxLen(FieldDescription, input.Description.Value(), DescriptionMaxLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Name.HasValue() {
		if err := service.guard.EnsureNameAvailable(ctx, service.kind.Family(), input.Name.Value(), id); err != nil {
			return nil, err
		}
	}

	updated, err := service.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info(service.kind.Event+"_updated", slog.Int("id", id))
	return updated, nil
}

func (service *Service) Delete(ctx context.Context, id int) (catalog.Deleted, error) {
	family := service.kind.Family()

	if err := service.guard.EnsureExists(ctx, family, id); err != nil {
		return catalog.Deleted{}, err
	}
	if err := service.guard.EnsureNoDependents(ctx, family, id); err != nil {
		return catalog.Deleted{}, err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return catalog.Deleted{}, err
	}

	service.logger.Warn(service.kind.Event+"_deleted", slog.Int("id", id))
	return catalog.Deleted{ID: id}, nil
}
