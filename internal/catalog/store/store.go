// Package store reads and grows the sport catalog. Listing requires no
// auth; inserts come only through the judge-guarded administrative path.
package store

import (
	"context"

	"sportreg/internal/catalog/models"
)

// Store is the sport catalog contract. Create returns sentinel.ErrConflict
// when the title already exists.
type Store interface {
	List(ctx context.Context) ([]models.Sport, error)
	Create(ctx context.Context, title string) (int64, error)
	FindByID(ctx context.Context, id int64) (models.Sport, error)
}
