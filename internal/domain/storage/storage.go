package storage

import (
	"tastelog/internal/domain/categories"
	"tastelog/internal/domain/reviews"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Container bundles the per-entity stores behind one pool. Handlers only
// see the Store interfaces, so tests swap in the memory fakes.
type Container struct {
	Reviews    reviews.Store
	Categories categories.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		Reviews:    reviews.NewRepository(db),
		Categories: categories.NewRepository(db),
	}
}
