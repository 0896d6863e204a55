package repositoryImp

import (
	"context"

	"pasture/pkg/layout/repository"
)

type scoped struct {
	s     repository.Store
	scope string
}

// NewScoped prefixes every key with scope, so one shared store can hold a
// layout per user.
func NewScoped(s repository.Store, scope string) repository.Store {
	return &scoped{s: s, scope: scope}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, error) {
	return s.s.Get(ctx, s.scope+"."+key)
}

func (s *scoped) Set(ctx context.Context, key string, blob []byte) error {
	return s.s.Set(ctx, s.scope+"."+key, blob)
}
