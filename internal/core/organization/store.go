// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organization

import (
	"context"

	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type Repository interface {
	List(ctx context.Context, spec listquery.Spec) ([]*Organization, int, error)
	Get(ctx context.Context, id int) (*Organization, error)
	Create(ctx context.Context, input Input) (*Organization, error)
	Update(ctx context.Context, id int, input Input) (*Organization, error)
	Delete(ctx context.Context, id int) error

	ListMembers(ctx context.Context, organizationID int) ([]*Member, error)
	// UpsertMember keeps the original joined_at of an existing membership.
	UpsertMember(ctx context.Context, organizationID, characterID int, role *string, isCurrent bool) error
	DeleteMember(ctx context.Context, organizationID, characterID int) error
}
