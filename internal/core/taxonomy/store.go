// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"

	"github.com/taibuivan/grandline/internal/platform/listquery"
)

// Repository persists the rows of one kind.
type Repository interface {
	List(ctx context.Context, spec listquery.Spec) ([]*Type, int, error)
	Get(ctx context.Context, id int) (*Type, error)
	Create(ctx context.Context, input CreateInput) (*Type, error)
	Update(ctx context.Context, id int, input UpdateInput) (*Type, error)
	Delete(ctx context.Context, id int) error
}
