package services

import (
	"context"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
	"github.com/blumenos/gridadmin/pkg/eventbus"
)

type SubstationService struct {
	repo      substation.Repository
	publisher eventbus.EventBus
}

func NewSubstationService(repo substation.Repository, publisher eventbus.EventBus) *SubstationService {
	return &SubstationService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *SubstationService) Count(ctx context.Context, params substation.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *SubstationService) GetPaginated(ctx context.Context, params substation.FindParams) ([]substation.Substation, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *SubstationService) GetByID(ctx context.Context, id uint) (substation.Substation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SubstationService) Create(ctx context.Context, dto *substation.CreateDTO) (substation.Substation, error) {
	created, err := s.repo.Create(ctx, dto.ToEntity())
	if err != nil {
		return substation.Substation{}, err
	}
	s.publisher.Publish(substation.CreatedEvent{Result: created})
	return created, nil
}

func (s *SubstationService) Update(ctx context.Context, id uint, dto *substation.UpdateDTO) (substation.Substation, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return substation.Substation{}, err
	}
	updated, err := s.repo.Update(ctx, dto.Apply(existing))
	if err != nil {
		return substation.Substation{}, err
	}
	s.publisher.Publish(substation.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *SubstationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// BulkCreate persists a batch of already validated substations. The caller is
// expected to run it inside a transaction so a mid-batch failure rolls back
// the whole import.
func (s *SubstationService) BulkCreate(ctx context.Context, dtos []*substation.CreateDTO) ([]substation.Substation, error) {
	entities := make([]substation.Substation, 0, len(dtos))
	for _, dto := range dtos {
		entities = append(entities, dto.ToEntity())
	}
	created, err := s.repo.CreateMany(ctx, entities)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(substation.BulkImportedEvent{Count: len(created)})
	return created, nil
}
