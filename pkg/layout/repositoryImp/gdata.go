package repositoryImp

import (
	"context"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"pasture/pkg/layout/repository"
)

const gdataObject = "map"

type gdataStore struct{ m *gdata.Manager }

// NewGdata keeps layouts in the platform's local app data (a directory on
// desktop, localStorage under wasm).
func NewGdata(appName string) (repository.Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return &gdataStore{m: m}, nil
}

func (s *gdataStore) Get(_ context.Context, key string) ([]byte, error) {
	if !s.m.ObjectPropExists(gdataObject, key) {
		return nil, repository.ErrNotFound
	}
	return s.m.LoadObjectProp(gdataObject, key)
}

func (s *gdataStore) Set(_ context.Context, key string, blob []byte) error {
	return s.m.SaveObjectProp(gdataObject, key, blob)
}
