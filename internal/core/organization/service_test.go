// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organization_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/core/organization"
	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/pkg/optional"
)

/*
TestService_Create verifies the reference checks on type, leader and ship.
*/
func TestService_Create(t *testing.T) {
	ctx := context.Background()

	input := organization.Input{
		Name:               optional.Of("Straw Hat Pirates"),
		OrganizationTypeID: optional.Of(1),
		LeaderID:           optional.Of(1),
		ShipID:             optional.Of(2),
	}

	tests := []struct {
		name     string
		missing  string
		wantCode string
	}{
		{"unknown type", "organization_types", "INVALID_ORGANIZATION_TYPE_ID"},
		{"unknown leader", "characters", "INVALID_LEADER_ID"},
		{"unknown ship", "ships", "INVALID_SHIP_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			for _, table := range []string{"organization_types", "characters", "ships"} {
				f.store.On("Exists", ctx, table, mock.Anything).Return(table != tt.missing, nil)
			}

			_, err := f.service.Create(ctx, input)

			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("all references resolve", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, mock.Anything, mock.Anything).Return(true, nil)
		f.store.On("Taken", ctx, "organizations", "name", "Straw Hat Pirates", 0).Return(false, nil)
		f.repo.On("Create", ctx, input).Return(&organization.Organization{ID: 1, Status: organization.StatusActive}, nil)

		created, err := f.service.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, organization.StatusActive, created.Status)
	})
}

/*
TestService_Validation verifies the field rules of organizations.
*/
func TestService_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    organization.Input
		wantCode string
	}{
		{"missing type", organization.Input{Name: optional.Of("Marines")}, "INVALID_ORGANIZATION_TYPE_ID"},
		{"negative bounty", organization.Input{Name: optional.Of("Marines"), OrganizationTypeID: optional.Of(2), TotalBounty: optional.Of(int64(-5))}, "INVALID_TOTAL_BOUNTY"},
		{"null bounty", organization.Input{Name: optional.Of("Marines"), OrganizationTypeID: optional.Of(2), TotalBounty: optional.Null[int64]()}, "INVALID_TOTAL_BOUNTY"},
		{"unknown status", organization.Input{Name: optional.Of("Marines"), OrganizationTypeID: optional.Of(2), Status: optional.Of("sleeping")}, "INVALID_STATUS"},
		{"long base", organization.Input{Name: optional.Of("Marines"), OrganizationTypeID: optional.Of(2), Base: optional.Of(strings.Repeat("b", 101))}, "INVALID_BASE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.service.Create(ctx, tt.input)

			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
			assert.Empty(t, f.store.Calls)
		})
	}
}

/*
TestService_Members verifies the membership upsert and removal.
*/
func TestService_Members(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to a current membership with a cleaned role", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "organizations", 1).Return(true, nil)
		f.store.On("Exists", ctx, "characters", 3).Return(true, nil)
		f.repo.On("UpsertMember", ctx, 1, 3, mock.MatchedBy(func(role *string) bool {
			return role != nil && *role == "Navigator"
		}), true).Return(nil)
		f.repo.On("ListMembers", ctx, 1).Return([]*organization.Member{{OrganizationID: 1}}, nil)

		role := "  Navigator "
		members, err := f.service.SetMember(ctx, 1, 3, organization.MemberInput{Role: &role})

		require.NoError(t, err)
		assert.Len(t, members, 1)
		f.repo.AssertExpectations(t)
	})

	t.Run("missing character", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, "organizations", 1).Return(true, nil)
		f.store.On("Exists", ctx, "characters", 50).Return(false, nil)

		err := f.service.RemoveMember(ctx, 1, 50)

		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
		f.repo.AssertNotCalled(t, "DeleteMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing membership", func(t *testing.T) {
		f := newFixture()
		f.store.On("Exists", ctx, mock.Anything, mock.Anything).Return(true, nil)
		f.repo.On("DeleteMember", ctx, 1, 3).Return(apperr.NotFound("Membership"))

		err := f.service.RemoveMember(ctx, 1, 3)
		assert.EqualError(t, err, "Membership not found")
	})
}

/*
TestService_Delete verifies that members block the deletion.
*/
func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.store.On("Exists", ctx, "organizations", 1).Return(true, nil)
	f.store.On("Count", ctx, "organization_members", "organization_id", 1).Return(9, nil)

	_, err := f.service.Delete(ctx, 1)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeHasAssociations, ae.Code)
	assert.Equal(t, 409, ae.HTTPStatus)
	assert.Equal(t, 9, ae.Count)
	assert.Contains(t, ae.Message, "9 associated members")
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

/*
TestService_DuplicateName verifies that a taken name blocks both create and rename before any write.
*/
func TestService_DuplicateName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		write func(service *organization.Service) error
	}{
		{"create", func(service *organization.Service) error {
			_, err := service.Create(ctx, organization.Input{Name: optional.Of("Marines"), OrganizationTypeID: optional.Of(2)})
			return err
		}},
		{"rename", func(service *organization.Service) error {
			_, err := service.Update(ctx, 4, organization.Input{Name: optional.Of("Marines")})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.store.On("Exists", ctx, mock.Anything, mock.Anything).Return(true, nil)
			f.store.On("Taken", ctx, "organizations", "name", "Marines", mock.Anything).Return(true, nil)

			err := tt.write(f.service)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeDuplicateName, ae.Code)
			assert.Equal(t, "Organization name already exists", ae.Message)
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

	_, err := f.service.Update(context.Background(), 1, organization.Input{})

	assert.True(t, apperr.HasCode(err, apperr.CodeNoFieldsProvided))
	assert.Empty(t, f.store.Calls)
	assert.Empty(t, f.repo.Calls)
}
