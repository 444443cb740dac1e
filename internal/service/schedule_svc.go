package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

type ScheduleStore interface {
	Create(ctx context.Context, s *domain.Schedule) error
	ByID(ctx context.Context, id string) (*domain.Schedule, error)
	ByCourtAndStart(ctx context.Context, courtID string, start time.Time) (*domain.Schedule, error)
	ByCourt(ctx context.Context, courtID string) ([]domain.Schedule, error)
	ByDateRange(ctx context.Context, from, to time.Time) ([]domain.Schedule, error)
}

type ScheduleSvc struct {
	repo   ScheduleStore
	courts CourtLookup

	now func() time.Time
}

func NewScheduleSvc(r ScheduleStore, courts CourtLookup) *ScheduleSvc {
	return &ScheduleSvc{repo: r, courts: courts, now: time.Now}
}

// Add creates a one hour slot on a court. A court can hold at most one
// slot per start time.
func (s *ScheduleSvc) Add(ctx context.Context, courtID string, start time.Time) (*domain.Schedule, error) {
	if start.IsZero() {
		return nil, apperr.InvalidRequest("missing schedule start date and time")
	}
	if !start.After(s.now()) {
		return nil, apperr.InvalidRequest("start date and time is in the past")
	}
	court, err := s.courts.ByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ByCourtAndStart(ctx, court.ID, start)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(fmt.Sprintf("the schedule slot is already taken: %s", start.Format(time.RFC3339)))
	}

	sched := &domain.Schedule{
		CourtID:       court.ID,
		StartDateTime: start,
		EndDateTime:   start.Add(domain.PlayTime),
	}
	if err := s.repo.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *ScheduleSvc) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.repo.ByID(ctx, id)
}

func (s *ScheduleSvc) FindByCourt(ctx context.Context, courtID string) ([]domain.Schedule, error) {
	return s.repo.ByCourt(ctx, courtID)
}

func (s *ScheduleSvc) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Schedule, error) {
	return s.repo.ByDateRange(ctx, from, to)
}
