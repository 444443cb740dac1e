package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

// ErrSlotTaken is returned when a schedule already holds a
// READY_TO_PLAY reservation. The service layer turns it into a
// conflict error with the court and time window attached.
var ErrSlotTaken = errors.New("slot already has a ready-to-play reservation")

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Migrate() error {
	if err := r.db.AutoMigrate(&domain.Reservation{}); err != nil {
		return err
	}
	// Partial unique index backing the one-ready-reservation-per-slot
	// invariant at the storage level, independent of the locking
	// transaction below.
	return r.db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_ready_slot
		 ON reservations (schedule_id) WHERE status = 'READY_TO_PLAY'`,
	).Error
}

// CreateIfSlotFree runs in a txn and locks any READY_TO_PLAY row for
// the same schedule before inserting, so two concurrent bookings for
// one slot cannot both pass the check.
func (r *ReservationRepo) CreateIfSlotFree(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Reservation
		err := tx.Model(&domain.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("schedule_id = ? AND status = ?", res.ScheduleID, domain.StatusReadyToPlay).
			Take(&existing).Error

		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		return tx.Create(res).Error
	})
}

func (r *ReservationRepo) ByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Reservation not found.")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepo) Save(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationRepo) BySchedule(ctx context.Context, scheduleID string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Find(&out).Error
	return out, err
}

// AllStartingAtOrBefore returns every reservation whose slot started at
// or before t, regardless of status.
func (r *ReservationRepo) AllStartingAtOrBefore(ctx context.Context, t time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Joins("JOIN schedules ON schedules.id = reservations.schedule_id").
		Where("schedules.start_date_time <= ?", t).
		Find(&out).Error
	return out, err
}
