// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package devilfruit

import (
	"context"

	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type Repository interface {
	List(ctx context.Context, spec listquery.Spec) ([]*DevilFruit, int, error)
	Get(ctx context.Context, id int) (*DevilFruit, error)
	Create(ctx context.Context, input Input) (*DevilFruit, error)
	Update(ctx context.Context, id int, input Input) (*DevilFruit, error)
	Delete(ctx context.Context, id int) error
}
