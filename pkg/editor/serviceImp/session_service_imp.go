package serviceImp

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"pasture/pkg/editor/service"
	"pasture/pkg/mapeditor"
)

type sessionSvc struct {
	mu       sync.RWMutex
	sessions map[string]*mapeditor.Dispatcher
	group    singleflight.Group

	stores service.StoreFactory
	source mapeditor.PaddockSource
	log    *zap.Logger
}

func New(stores service.StoreFactory, source mapeditor.PaddockSource, log *zap.Logger) service.SessionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &sessionSvc{
		sessions: map[string]*mapeditor.Dispatcher{},
		stores:   stores,
		source:   source,
		log:      log.Named("sessions"),
	}
}

func (s *sessionSvc) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

type created struct {
	d     *mapeditor.Dispatcher
	notes []mapeditor.Notification
}

func (s *sessionSvc) Session(ctx context.Context, owner string) (*mapeditor.Dispatcher, []mapeditor.Notification, error) {
	if owner == "" {
		return nil, nil, fmt.Errorf("session: empty owner")
	}
	s.mu.RLock()
	d, ok := s.sessions[owner]
	s.mu.RUnlock()
	if ok {
		return d, nil, nil
	}

	v, err, shared := s.group.Do(owner, func() (any, error) {
		s.mu.RLock()
		d, ok := s.sessions[owner]
		s.mu.RUnlock()
		if ok {
			return created{d: d}, nil
		}
		c, err := s.open(ctx, owner)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.sessions[owner] = c.d
		s.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, nil, err
	}
	c := v.(created)
	if shared {
		return c.d, nil, nil
	}
	return c.d, c.notes, nil
}

// open builds the editor for owner and runs the first-load sequence.
func (s *sessionSvc) open(ctx context.Context, owner string) (created, error) {
	store, err := s.stores(owner)
	if err != nil {
		return created{}, fmt.Errorf("layout store for %q: %w", owner, err)
	}
	log := s.log.With(zap.String("owner", owner))
	d := mapeditor.NewDispatcher(
		mapeditor.WithStore(store),
		mapeditor.WithSource(s.source),
		mapeditor.WithNotifier(mapeditor.NewLogNotifier(log)),
		mapeditor.WithLogger(log),
	)

	var (
		records  []mapeditor.PaddockRecord
		fetchErr error
	)
	if s.source != nil {
		records, fetchErr = s.source.List(ctx)
	}
	res := d.Bootstrap(ctx, records)
	notes := res.Notifications
	if fetchErr != nil {
		log.Warn("paddock list unavailable on first load", zap.Error(fetchErr))
		r := d.Dispatch(ctx, mapeditor.Command{Kind: mapeditor.CmdRefresh, Fetched: &mapeditor.FetchResult{Err: fetchErr}})
		notes = append(notes, r.Notifications...)
	}
	log.Info("session opened", zap.Int("paddocks", len(records)))
	return created{d: d, notes: notes}, nil
}
