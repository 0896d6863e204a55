package repository

import (
	"context"

	"pasture/entities"
)

type PaddockRepository interface {
	List(ctx context.Context) ([]entities.Paddock, error)
	Create(ctx context.Context, p *entities.Paddock) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uint) (bool, error)
}
