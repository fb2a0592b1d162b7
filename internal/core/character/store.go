// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"context"

	"github.com/taibuivan/grandline/internal/platform/listquery"
)

type Repository interface {
	List(ctx context.Context, spec listquery.Spec) ([]*Character, int, error)
	Get(ctx context.Context, id int) (*Character, error)
	Create(ctx context.Context, input Input) (*Character, error)
	Update(ctx context.Context, id int, input Input) (*Character, error)
	// Delete removes the character and scrubs it from devil fruit histories.
	Delete(ctx context.Context, id int) error

	ListHaki(ctx context.Context, characterID int) ([]*HakiMastery, error)
	UpsertHaki(ctx context.Context, characterID, hakiTypeID int, level string, isCurrent bool) error
	DeleteHaki(ctx context.Context, characterID, hakiTypeID int) error
}
