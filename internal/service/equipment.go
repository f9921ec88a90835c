package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/studio-booking/internal/model"
	"github.com/iliyamo/studio-booking/internal/repository"
)

// Invalidator drops cached equipment listings.
type Invalidator interface {
	Purge(ctx context.Context) error
}

// EquipmentService is CRUD over the inventory.  Every successful mutation
// purges the listing cache.
type EquipmentService struct {
	store repository.EquipmentStore
	cache Invalidator
	log   *logrus.Logger
}

// NewEquipmentService wires the store and an optional cache (nil disables
// invalidation).
func NewEquipmentService(store repository.EquipmentStore, cache Invalidator, log *logrus.Logger) *EquipmentService {
	return &EquipmentService{store: store, cache: cache, log: log}
}

func (s *EquipmentService) List(ctx context.Context) ([]*model.Equipment, error) {
	return s.store.List(ctx)
}

func (s *EquipmentService) Get(ctx context.Context, id uint64) (*model.Equipment, error) {
	return s.store.GetByID(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, e *model.Equipment) (*model.Equipment, error) {
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	s.purge(ctx)
	return e, nil
}

func (s *EquipmentService) Update(ctx context.Context, id uint64, p model.EquipmentPatch) (*model.Equipment, error) {
	e, err := s.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.purge(ctx)
	return e, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id uint64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.purge(ctx)
	return nil
}

func (s *EquipmentService) purge(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Purge(ctx); err != nil {
		s.log.WithError(err).Warn("equipment cache purge failed")
	}
}
