// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/core/taxonomy"
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
	return &Service{
		repo:   repo,
		guard:  guard,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context, query url.Values) ([]*Character, pagination.Meta, error) {
	spec, err := listquery.Translate(query, ListConfig)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	characters, total, err := service.repo.List(ctx, spec)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return characters, pagination.NewMeta(spec.Params, total), nil
}

func (service *Service) Get(ctx context.Context, id int) (*Character, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	return service.repo.Get(ctx, id)
}

func (service *Service) Create(ctx context.Context, input Input) (*Character, error) {
	input = clean(input)

	// 1. Shape
	if err := check(input, true); err != nil {
		return nil, err
	}

	// 2. References and uniqueness
	if err := service.ensureReferences(ctx, input); err != nil {
		return nil, err
	}
	if err := service.guard.EnsureNameAvailable(ctx, Family, input.Name.Value(), 0); err != nil {
		return nil, err
	}

	// 3. Persist
	created, err := service.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("character_created", slog.Int("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) Update(ctx context.Context, id int, input Input) (*Character, error) {
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

	service.logger.Info("character_updated", slog.Int("id", id))
	return updated, nil
}

// Delete refuses while fruits, organizations, memberships or masteries point at the character.
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

	service.logger.Warn("character_deleted", slog.Int("id", id))
	return catalog.Deleted{ID: id}, nil
}

// # Haki

func (service *Service) ListHaki(ctx context.Context, id int) ([]*HakiMastery, error) {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return nil, err
	}
	return service.repo.ListHaki(ctx, id)
}

// SetHaki creates or replaces the mastery of one haki type and returns the character's masteries.
func (service *Service) SetHaki(ctx context.Context, id, hakiTypeID int, input HakiInput) ([]*HakiMastery, error) {
	if err := service.ensureLink(ctx, id, hakiTypeID); err != nil {
		return nil, err
	}

	level := MasteryBasic
	if input.MasteryLevel != nil {
		level = *input.MasteryLevel
	}
	isCurrent := true
	if input.IsCurrent != nil {
		isCurrent = *input.IsCurrent
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldMasteryLevel, level, MasteryLevels...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpsertHaki(ctx, id, hakiTypeID, level, isCurrent); err != nil {
		return nil, err
	}

	service.logger.Info("character_haki_saved",
		slog.Int("character_id", id),
		slog.Int("haki_type_id", hakiTypeID),
		slog.String("mastery_level", level),
	)
	return service.repo.ListHaki(ctx, id)
}

func (service *Service) RemoveHaki(ctx context.Context, id, hakiTypeID int) error {
	if err := service.ensureLink(ctx, id, hakiTypeID); err != nil {
		return err
	}
	if err := service.repo.DeleteHaki(ctx, id, hakiTypeID); err != nil {
		return err
	}

	service.logger.Warn("character_haki_removed", slog.Int("character_id", id), slog.Int("haki_type_id", hakiTypeID))
	return nil
}

// # Helpers

func (service *Service) ensureLink(ctx context.Context, id, hakiTypeID int) error {
	if err := service.guard.EnsureExists(ctx, Family, id); err != nil {
		return err
	}
	return service.guard.EnsureExists(ctx, taxonomy.HakiTypes.Family(), hakiTypeID)
}

func (service *Service) ensureReferences(ctx context.Context, input Input) error {
	if input.RaceID.HasValue() {
		if err := service.guard.EnsureReference(ctx, taxonomy.Races.Family(), FieldRaceID, input.RaceID.Value()); err != nil {
			return err
		}
	}
	if input.CharacterTypeID.HasValue() {
		if err := service.guard.EnsureReference(ctx, taxonomy.CharacterTypes.Family(), FieldCharacterTypeID, input.CharacterTypeID.Value()); err != nil {
			return err
		}
	}
	return nil
}

func clean(input Input) Input {
	input.Name = catalog.CleanName(input.Name)
	input.Epithet = catalog.CleanText(input.Epithet)
	input.Origin = catalog.CleanText(input.Origin)
	input.Description = catalog.CleanText(input.Description)
	input.ImageURL = catalog.CleanText(input.ImageURL)
	return input
}

// check validates the supplied fields. creating makes the name mandatory.
func check(input Input, creating bool) error {
	validator := &validate.Validator{}

	if creating || input.Name.Provided() {
		validator.Required(FieldName, input.Name.Value()).MaxLen(FieldName, input.Name.Value(), NameMaxLength)
	}
	if input.Epithet.HasValue() {
		validator.MaxLen(FieldEpithet, input.Epithet.Value(), EpithetMaxLength)
	}
	if input.RaceID.HasValue() {
		validator.PositiveID(FieldRaceID, input.RaceID.Value())
	}
	if input.CharacterTypeID.HasValue() {
		validator.PositiveID(FieldCharacterTypeID, input.CharacterTypeID.Value())
	}
	if input.Bounty.HasValue() {
		validator.NonNegative(FieldBounty, input.Bounty.Value())
	}
	if input.Age.HasValue() {
		validator.Range(FieldAge, int64(input.Age.Value()), 0, MaxAge)
	}
	if input.Height.HasValue() {
		validator.Range(FieldHeight, int64(input.Height.Value()), 0, MaxHeight)
	}
	if input.Origin.HasValue() {
		validator.MaxLen(FieldOrigin, input.Origin.Value(), OriginMaxLength)
	}
	validator.Custom(FieldIsAlive, input.IsAlive.IsNull(), "Is alive must be true or false")
	if input.Description.HasValue() {
		validator.MaxLen(FieldDescription, input.Description.Value(), DescriptionMaxLength)
	}
	if input.ImageURL.HasValue() {
		validator.URL(FieldImageURL, input.ImageURL.Value())
	}

	return validator.Err()
}
