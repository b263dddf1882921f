package catalog

import (
	"context"

	"belleza/internal/domain"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
}

type ProfileRepository interface {
	ListStaff(ctx context.Context) ([]domain.Profile, error)
}

// Service exposes what the booking form consumes: active salon services and
// the staff roster. Read-only; catalog management belongs to the back office.
type Service struct {
	services ServiceRepository
	profiles ProfileRepository
}

func NewService(services ServiceRepository, profiles ProfileRepository) *Service {
	return &Service{services: services, profiles: profiles}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListStaff(ctx)
}
