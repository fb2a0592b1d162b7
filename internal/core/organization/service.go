// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organization

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/core/character"
	"github.com/taibuivan/grandline/internal/core/ship"
	"github.com/taibuivan/grandline/internal/core/taxonomy"
	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/internal/platform/validate"
	"github.com/taibuivan/grandline/pkg/pagination"
	"github.com/taibuivan/grandline/pkg/sanitize"
)

type Service struct {
	repo   Repository
	guard  *integrity.Guard
	logger *slog.Logger
}

func NewService(repo Repository, guard *integrity.Guard, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, logger: logger}
}

func (service *Service) List(ctx context.Context, query url.Values) ([]*Organization, pagination.Meta, error) {
	spec, err := listquery.Translate(query, ListConfig)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	organizations, total, err := service.repo.List(ctx, spec)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return organizations, pagination.NewMeta(spec.Params, total), nil
}

func (service *Service) Get(ctx context.Context, id int) (*Organization, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	return service.repo.Get(ctx, id)
}

func (service *Service) Create(ctx context.Context, input Input) (*Organization, error) {
	input = clean(input)

	if err := check(input, true); err != nil {
		return nil, err
	}
	if err := service.ensureReferences(ctx, input); err != nil {
		return nil, err
	}
	if err := service.guard.EnsureNameAvailable(ctx, Family, input.Name.Value(), 0); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("organization_created", slog.Int("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) Update(ctx context.Context, id int, input Input) (*Organization, error) {
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
	if err := service.ensureReferences(ctx, input); err != nil {
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

	service.logger.Info("organization_updated", slog.Int("id", id))
	return updated, nil
}

// Delete refuses while the organization has members.
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

	service.logger.Warn("organization_deleted", slog.Int("id", id))
	return catalog.Deleted{ID: id}, nil
}

// # Members

func (service *Service) ListMembers(ctx context.Context, id int) ([]*Member, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	return service.repo.ListMembers(ctx, id)
}

// SetMember creates or replaces a membership and returns the organization's members.
func (service *Service) SetMember(ctx context.Context, id, characterID int, input MemberInput) ([]*Member, error) {
	if err := service.ensureLink(ctx, id, characterID); err != nil {
		return nil, err
	}

	role := sanitize.NullablePtr(input.Role)
	isCurrent := true
	if input.IsCurrent != nil {
		isCurrent = *input.IsCurrent
	}

	validator := &validate.Validator{}
	if role != nil {
		validator.MaxLen(FieldRole, *role, RoleMaxLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpsertMember(ctx, id, characterID, role, isCurrent); err != nil {
		return nil, err
	}

	service.logger.Info("organization_member_saved",
		slog.Int("organization_id", id),
		slog.Int("character_id", characterID),
		slog.Bool("is_current", isCurrent),
	)
	return service.repo.ListMembers(ctx, id)
}

func (service *Service) RemoveMember(ctx context.Context, id, characterID int) error {
	if err := service.ensureLink(ctx, id, characterID); err != nil {
		return err
	}
	if err := service.repo.DeleteMember(ctx, id, characterID); err != nil {
		return err
	}

	service.logger.Warn("organization_member_removed", slog.Int("organization_id", id), slog.Int("character_id", characterID))
	return nil
}

// # Helpers

func (service *Service) ensureLink(ctx context.Context, id, characterID int) error {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return err
	}
	return service.guard.EnsureExists(ctx, character.Family, characterID)
}

func (service *Service) ensureReferences(ctx context.Context, input Input) error {
	if input.OrganizationTypeID.HasValue() {
		if err := service.guard.EnsureReference(ctx, taxonomy.OrganizationTypes.Family(), FieldOrganizationTypeID, input.OrganizationTypeID.Value()); err != nil {
			return err
		}
	}
	if input.LeaderID.HasValue() {
		if err := service.guard.EnsureReference(ctx, character.Family, FieldLeaderID, input.LeaderID.Value()); err != nil {
			return err
		}
	}
	if input.ShipID.HasValue() {
		if err := service.guard.EnsureReference(ctx, ship.Family, FieldShipID, input.ShipID.Value()); err != nil {
			return err
		}
	}
	return nil
}

func clean(input Input) Input {
	input.Name = catalog.CleanName(input.Name)
	input.Status = catalog.CleanName(input.Status)
	input.Base = catalog.CleanText(input.Base)
	input.Description = catalog.CleanText(input.Description)
	return input
}

func check(input Input, creating bool) error {
	validator := &validate.Validator{}

	if creating || input.Name.Provided() {
		validator.Required(FieldName, input.Name.Value()).MaxLen(FieldName, input.Name.Value(), NameMaxLength)
	}

	switch {
	case input.OrganizationTypeID.HasValue():
		validator.PositiveID(FieldOrganizationTypeID, input.OrganizationTypeID.Value())
	case creating || input.OrganizationTypeID.IsNull():
		validator.Custom(FieldOrganizationTypeID, true, "Organization type id is required")
	}

	if input.LeaderID.HasValue() {
		validator.PositiveID(FieldLeaderID, input.LeaderID.Value())
	}
	if input.ShipID.HasValue() {
		validator.PositiveID(FieldShipID, input.ShipID.Value())
	}
	if input.TotalBounty.Provided() {
		validator.Custom(FieldTotalBounty, input.TotalBounty.IsNull(), "Total bounty cannot be null")
		validator.NonNegative(FieldTotalBounty, input.TotalBounty.Value())
	}
	if input.Status.Provided() {
		validator.OneOf(FieldStatus, input.Status.Value(), Statuses...)
	}
	if input.Base.HasValue() {
		validator.MaxLen(FieldBase, input.Base.Value(), BaseMaxLength)
	}
	if input.Description.HasValue() {
		validator.MaxLen(FieldDescription, input.Description.Value(), DescriptionMaxLength)
	}

	return validator.Err()
}
