package service

import (
	"context"
	"errors"

	"pasture/entities"
)

var (
	ErrInvalid  = errors.New("invalid paddock")
	ErrNotFound = errors.New("paddock not found")
)

// CreateInput is the new-paddock form. Empty optional fields get defaults.
type CreateInput struct {
	Name         string  `json:"nombre" form:"nombre"`
	Hectares     float64 `json:"hectareas" form:"hectareas"`
	PastureType  string  `json:"tipo_pastura" form:"tipo_pastura"`
	Condition    string  `json:"estado" form:"estado"`
	Observations string  `json:"observaciones" form:"observaciones"`
}

type PaddockService interface {
	List(ctx context.Context) ([]entities.Paddock, error)
	Create(ctx context.Context, in CreateInput) (*entities.Paddock, error)
	Delete(ctx context.Context, id uint) error
}
