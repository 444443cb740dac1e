package service

import (
	"context"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

type GuestStore interface {
	Create(ctx context.Context, g *domain.Guest) error
	ByID(ctx context.Context, id string) (*domain.Guest, error)
	ByName(ctx context.Context, name string) ([]domain.Guest, error)
	List(ctx context.Context) ([]domain.Guest, error)
	Save(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id string) error
}

type GuestSvc struct {
	repo GuestStore
}

func NewGuestSvc(r GuestStore) *GuestSvc {
	return &GuestSvc{repo: r}
}

func (s *GuestSvc) Add(ctx context.Context, name string) (*domain.Guest, error) {
	if name == "" {
		return nil, apperr.InvalidRequest("guest name is required")
	}
	g := &domain.Guest{Name: name}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GuestSvc) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	return s.repo.ByID(ctx, id)
}

func (s *GuestSvc) FindByName(ctx context.Context, name string) ([]domain.Guest, error) {
	return s.repo.ByName(ctx, name)
}

func (s *GuestSvc) List(ctx context.Context) ([]domain.Guest, error) {
	return s.repo.List(ctx)
}

func (s *GuestSvc) Update(ctx context.Context, id, name string) (*domain.Guest, error) {
	if name == "" {
		return nil, apperr.InvalidRequest("guest name is required")
	}
	g, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = name
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GuestSvc) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
