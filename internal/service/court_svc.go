package service

import (
	"context"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

type CourtStore interface {
	Create(ctx context.Context, c *domain.TennisCourt) error
	ByID(ctx context.Context, id string) (*domain.TennisCourt, error)
	List(ctx context.Context) ([]domain.TennisCourt, error)
}

type ScheduleListing interface {
	ByCourt(ctx context.Context, courtID string) ([]domain.Schedule, error)
}

type CourtSvc struct {
	repo      CourtStore
	schedules ScheduleListing
}

func NewCourtSvc(r CourtStore, schedules ScheduleListing) *CourtSvc {
	return &CourtSvc{repo: r, schedules: schedules}
}

func (s *CourtSvc) Add(ctx context.Context, name string) (*domain.TennisCourt, error) {
	if name == "" {
		return nil, apperr.InvalidRequest("tennis court name is required")
	}
	c := &domain.TennisCourt{Name: name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourtSvc) FindByID(ctx context.Context, id string) (*domain.TennisCourt, error) {
	return s.repo.ByID(ctx, id)
}

func (s *CourtSvc) List(ctx context.Context) ([]domain.TennisCourt, error) {
	return s.repo.List(ctx)
}

// FindByIDWithSchedules returns the court together with all its slots
// ordered by start time.
func (s *CourtSvc) FindByIDWithSchedules(ctx context.Context, id string) (*domain.TennisCourt, []domain.Schedule, error) {
	c, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	scheds, err := s.schedules.ByCourt(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, scheds, nil
}
