package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"pasture/pkg/layout/repository"
)

// Factory returns the layout store for one owner.
type Factory func(owner string) (repository.Store, error)

// NewFactory picks the backing store by kind ("sqlite", "gdata" or
// "memory"). db is only used for sqlite; memory stores are per call.
func NewFactory(kind, gdataApp string, db *gorm.DB) (Factory, error) {
	switch kind {
	case "memory":
		return func(string) (repository.Store, error) { return NewMemory(), nil }, nil
	case "gdata":
		shared, err := NewGdata(gdataApp)
		if err != nil {
			return nil, err
		}
		return func(owner string) (repository.Store, error) {
			return NewScoped(shared, owner), nil
		}, nil
	case "sqlite":
		if db == nil {
			return nil, fmt.Errorf("sqlite layout store needs a database")
		}
		return func(owner string) (repository.Store, error) {
			return NewSQLite(db, owner), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown layout store %q", kind)
}
