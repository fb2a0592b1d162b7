// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ship

import (
	"context"

	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type Repository interface {
	List(ctx context.Context, spec listquery.Spec) ([]*Ship, int, error)
	Get(ctx context.Context, id int) (*Ship, error)
	Create(ctx context.Context, input Input) (*Ship, error)
	Update(ctx context.Context, id int, input Input) (*Ship, error)
	Delete(ctx context.Context, id int) error
}
