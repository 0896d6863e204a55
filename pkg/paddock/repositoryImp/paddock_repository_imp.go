package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"pasture/entities"
	"pasture/pkg/paddock/repository"
)

type paddockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PaddockRepository { return &paddockRepo{db} }

func (r *paddockRepo) List(ctx context.Context) ([]entities.Paddock, error) {
	var out []entities.Paddock
	if err := r.db.WithContext(ctx).Order("nombre ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *paddockRepo) Create(ctx context.Context, p *entities.Paddock) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paddockRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entities.Paddock{}, id)
	return res.RowsAffected > 0, res.Error
}
