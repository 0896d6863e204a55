package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pasture/entities"
	repo "pasture/pkg/paddock/repository"
	"pasture/pkg/paddock/service"
)

const (
	defaultPastureType = "otro"
	defaultCondition   = "bueno"
	defaultCattleStage = "cria"
)

type paddockSvc struct {
	r   repo.PaddockRepository
	log *zap.Logger
}

func NewPaddockService(r repo.PaddockRepository, log *zap.Logger) service.PaddockService {
	if log == nil {
		log = zap.NewNop()
	}
	return &paddockSvc{r: r, log: log.Named("paddock")}
}

func (s *paddockSvc) List(ctx context.Context) ([]entities.Paddock, error) {
	return s.r.List(ctx)
}

func (s *paddockSvc) Create(ctx context.Context, in service.CreateInput) (*entities.Paddock, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre is required", service.ErrInvalid)
	}
	if in.Hectares <= 0 {
		return nil, fmt.Errorf("%w: hectareas must be positive", service.ErrInvalid)
	}
	pasture := strings.TrimSpace(in.PastureType)
	if pasture == "" {
		pasture = defaultPastureType
	}
	cond := strings.TrimSpace(in.Condition)
	if cond == "" {
		cond = defaultCondition
	}
	p := &entities.Paddock{
		Name:        name,
		Hectares:    in.Hectares,
		PastureType: pasture,
		CattleStage: defaultCattleStage,
		Description: strings.TrimSpace(fmt.Sprintf("Estado: %s. %s", cond, strings.TrimSpace(in.Observations))),
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("paddock created", zap.Uint("id", p.ID), zap.String("nombre", p.Name))
	return p, nil
}

func (s *paddockSvc) Delete(ctx context.Context, id uint) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}
	s.log.Info("paddock deleted", zap.Uint("id", id))
	return nil
}
