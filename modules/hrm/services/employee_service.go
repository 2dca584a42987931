package services

import (
	"context"

	"github.com/blumenos/gridadmin/modules/hrm/domain/aggregates/employee"
	"github.com/blumenos/gridadmin/pkg/eventbus"
)

type EmployeeService struct {
	repo      employee.Repository
	publisher eventbus.EventBus
}

func NewEmployeeService(repo employee.Repository, publisher eventbus.EventBus) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *EmployeeService) Count(ctx context.Context, params employee.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *EmployeeService) GetPaginated(ctx context.Context, params employee.FindParams) ([]employee.Employee, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, dto *employee.CreateDTO) (employee.Employee, error) {
	created, err := s.repo.Create(ctx, dto.ToEntity())
	if err != nil {
		return employee.Employee{}, err
	}
	s.publisher.Publish(employee.CreatedEvent{Result: created})
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, dto *employee.UpdateDTO) (employee.Employee, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	updated, err := s.repo.Update(ctx, dto.Apply(existing))
	if err != nil {
		return employee.Employee{}, err
	}
	s.publisher.Publish(employee.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *EmployeeService) Deactivate(ctx context.Context, id uint) (employee.Employee, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	updated, err := s.repo.Update(ctx, existing.Deactivate())
	if err != nil {
		return employee.Employee{}, err
	}
	s.publisher.Publish(employee.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *EmployeeService) Activate(ctx context.Context, id uint) (employee.Employee, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	updated, err := s.repo.Update(ctx, existing.Activate())
	if err != nil {
		return employee.Employee{}, err
	}
	s.publisher.Publish(employee.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *EmployeeService) BulkCreate(ctx context.Context, dtos []*employee.CreateDTO) ([]employee.Employee, error) {
	entities := make([]employee.Employee, 0, len(dtos))
	for _, dto := range dtos {
		entities = append(entities, dto.ToEntity())
	}
	created, err := s.repo.CreateMany(ctx, entities)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.BulkImportedEvent{Count: len(created)})
	return created, nil
}
