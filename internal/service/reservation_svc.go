package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
	"github.com/adrianburcea94/tennis-courts-v1/internal/repository"
)

// Deposit is the flat amount charged on every booking.
var Deposit = decimal.NewFromInt(10)

// ReservationStore is the persistence surface the lifecycle engine needs.
type ReservationStore interface {
	CreateIfSlotFree(ctx context.Context, r *domain.Reservation) error
	ByID(ctx context.Context, id string) (*domain.Reservation, error)
	Save(ctx context.Context, r *domain.Reservation) error
	AllStartingAtOrBefore(ctx context.Context, t time.Time) ([]domain.Reservation, error)
}

type GuestLookup interface {
	ByID(ctx context.Context, id string) (*domain.Guest, error)
}

type ScheduleLookup interface {
	ByID(ctx context.Context, id string) (*domain.Schedule, error)
}

type CourtLookup interface {
	ByID(ctx context.Context, id string) (*domain.TennisCourt, error)
}

// EventPublisher pushes lifecycle events to the broker. Failures are
// logged and never fail the operation.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type ReservationSvc struct {
	store     ReservationStore
	guests    GuestLookup
	schedules ScheduleLookup
	courts    CourtLookup
	pub       EventPublisher
	log       zerolog.Logger

	// now is swapped out in tests to pin the wall clock.
	now func() time.Time
}

func NewReservationSvc(store ReservationStore, guests GuestLookup, schedules ScheduleLookup, courts CourtLookup, pub EventPublisher, log zerolog.Logger) *ReservationSvc {
	return &ReservationSvc{
		store:     store,
		guests:    guests,
		schedules: schedules,
		courts:    courts,
		pub:       pub,
		log:       log,
		now:       time.Now,
	}
}

// Book reserves a slot for a guest and charges the deposit.
func (s *ReservationSvc) Book(ctx context.Context, guestID, scheduleID string) (*domain.Reservation, error) {
	return s.book(ctx, guestID, scheduleID, nil)
}

func (s *ReservationSvc) book(ctx context.Context, guestID, scheduleID string, previousID *string) (*domain.Reservation, error) {
	guest, err := s.guests.ByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	sched, err := s.schedules.ByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !sched.StartDateTime.After(s.now()) {
		return nil, apperr.InvalidRequest("start date and time is in the past")
	}

	res := &domain.Reservation{
		GuestID:               guest.ID,
		ScheduleID:            sched.ID,
		PreviousReservationID: previousID,
		Status:                domain.StatusReadyToPlay,
		Value:                 Deposit,
		RefundValue:           decimal.Zero,
	}
	if err := s.store.CreateIfSlotFree(ctx, res); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, s.slotConflict(ctx, sched)
		}
		return nil, err
	}

	s.publish(ctx, "reservation.booked", map[string]any{
		"reservation_id": res.ID,
		"guest_id":       res.GuestID,
		"schedule_id":    res.ScheduleID,
		"status":         res.Status,
	})
	return res, nil
}

func (s *ReservationSvc) slotConflict(ctx context.Context, sched *domain.Schedule) error {
	courtName := sched.CourtID
	if court, err := s.courts.ByID(ctx, sched.CourtID); err == nil {
		courtName = court.Name
	}
	return apperr.Conflict(fmt.Sprintf(
		"reservation already exists for tennis court %s, startDateTime = %s, endDateTime = %s",
		courtName,
		sched.StartDateTime.Format(time.RFC3339),
		sched.EndDateTime.Format(time.RFC3339),
	))
}

func (s *ReservationSvc) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.store.ByID(ctx, id)
}

// Cancel settles a ready reservation as CANCELLED and refunds part of
// the deposit depending on how far away the slot start still is.
func (s *ReservationSvc) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.settle(ctx, res, domain.StatusCancelled); err != nil {
		return nil, err
	}

	s.publish(ctx, "reservation.cancelled", map[string]any{
		"reservation_id": res.ID,
		"guest_id":       res.GuestID,
		"schedule_id":    res.ScheduleID,
		"refund_value":   res.RefundValue,
	})
	return res, nil
}

// Reschedule settles the existing reservation as RESCHEDULED, persists
// that, then books the target slot for the same guest. The two steps
// are intentionally not one transaction: if the new booking fails the
// old reservation stays legitimately rescheduled-out and the caller
// sees the booking error.
func (s *ReservationSvc) Reschedule(ctx context.Context, id, newScheduleID string) (*domain.Reservation, error) {
	if newScheduleID == "" {
		return nil, apperr.InvalidRequest("schedule id cannot be null")
	}
	prev, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prev.ScheduleID == newScheduleID {
		return nil, apperr.InvalidRequest("cannot reschedule to the same slot")
	}

	if err := s.settle(ctx, prev, domain.StatusRescheduled); err != nil {
		return nil, err
	}
	s.publish(ctx, "reservation.rescheduled", map[string]any{
		"reservation_id": prev.ID,
		"guest_id":       prev.GuestID,
		"schedule_id":    prev.ScheduleID,
		"refund_value":   prev.RefundValue,
	})

	return s.book(ctx, prev.GuestID, newScheduleID, &prev.ID)
}

// ShowPastReservations lists every reservation whose slot started at or
// before now, regardless of status.
func (s *ReservationSvc) ShowPastReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.store.AllStartingAtOrBefore(ctx, s.now())
}

// settle applies the shared cancel/reschedule transition and persists
// it. The refund is computed from the wall clock at this instant.
func (s *ReservationSvc) settle(ctx context.Context, res *domain.Reservation, to domain.ReservationStatus) error {
	if err := res.EnsureReadyToPlay(); err != nil {
		return err
	}
	sched, err := s.schedules.ByID(ctx, res.ScheduleID)
	if err != nil {
		return err
	}
	now := s.now()
	if !sched.StartDateTime.After(now) {
		return apperr.InvalidRequest("can cancel/reschedule only future dates")
	}

	minutes := int64(sched.StartDateTime.Sub(now).Minutes())
	refund := domain.RefundAmount(res.Value, minutes)
	if err := res.Settle(to, refund); err != nil {
		return err
	}
	return s.store.Save(ctx, res)
}

func (s *ReservationSvc) publish(ctx context.Context, key string, payload map[string]any) {
	if err := s.pub.PublishJSON(ctx, key, payload); err != nil {
		s.log.Warn().Err(err).Str("event", key).Msg("publish reservation event")
	}
}
