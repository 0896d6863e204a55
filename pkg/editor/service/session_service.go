package service

import (
	"context"

	"pasture/pkg/layout/repository"
	"pasture/pkg/mapeditor"
)

// StoreFactory returns the layout store for one owner.
type StoreFactory func(owner string) (repository.Store, error)

// SessionService hands out one editor per user. The notifications returned
// alongside a new session come from its first load and are nil afterwards.
type SessionService interface {
	Session(ctx context.Context, owner string) (*mapeditor.Dispatcher, []mapeditor.Notification, error)
	Len() int
}
