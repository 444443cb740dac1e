package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

type ScheduleRepo struct{ db *gorm.DB }

func NewScheduleRepo(db *gorm.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Schedule{})
}

func (r *ScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleRepo) ByID(ctx context.Context, id string) (*domain.Schedule, error) {
	var s domain.Schedule
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Schedule not found.")
		}
		return nil, err
	}
	return &s, nil
}

// ByCourtAndStart returns (nil, nil) when the court has no slot at
// that exact start time.
func (r *ScheduleRepo) ByCourtAndStart(ctx context.Context, courtID string, start time.Time) (*domain.Schedule, error) {
	var s domain.Schedule
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND start_date_time = ?", courtID, start).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepo) ByCourt(ctx context.Context, courtID string) ([]domain.Schedule, error) {
	var out []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Order("start_date_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ScheduleRepo) ByDateRange(ctx context.Context, from, to time.Time) ([]domain.Schedule, error) {
	var out []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("start_date_time >= ? AND end_date_time <= ?", from, to).
		Order("start_date_time ASC").
		Find(&out).Error
	return out, err
}
