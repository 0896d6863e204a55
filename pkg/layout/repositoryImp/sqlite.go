package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pasture/entities"
	"pasture/pkg/layout/repository"
)

type sqliteRepo struct {
	db    *gorm.DB
	owner string
}

// NewSQLite stores layouts in the map_layouts table under owner.
func NewSQLite(db *gorm.DB, owner string) repository.Store {
	return &sqliteRepo{db: db, owner: owner}
}

func (r *sqliteRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var row entities.MapLayout
	err := r.db.WithContext(ctx).
		Where("owner = ? AND layout_key = ?", r.owner, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Blob), nil
}

func (r *sqliteRepo) Set(ctx context.Context, key string, blob []byte) error {
	row := entities.MapLayout{Owner: r.owner, Key: key, Blob: string(blob)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "layout_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
		}).
		Create(&row).Error
}
