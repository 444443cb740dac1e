package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

// ReservationStatus is a closed set: a reservation starts READY_TO_PLAY
// and ends in exactly one of the terminal states.
type ReservationStatus string

const (
	StatusReadyToPlay ReservationStatus = "READY_TO_PLAY"
	StatusCancelled   ReservationStatus = "CANCELLED"
	StatusRescheduled ReservationStatus = "RESCHEDULED"
)

type Reservation struct {
	ID                    string            `gorm:"primaryKey" json:"id"`
	GuestID               string            `gorm:"index" json:"guestId"`
	ScheduleID            string            `gorm:"index" json:"scheduleId"`
	PreviousReservationID *string           `json:"previousReservationId,omitempty"`
	Status                ReservationStatus `gorm:"index" json:"status"`
	Value                 decimal.Decimal   `gorm:"type:numeric" json:"value"`
	RefundValue           decimal.Decimal   `gorm:"type:numeric" json:"refundValue"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

// EnsureReadyToPlay rejects any operation on a reservation that has
// already been settled.
func (r *Reservation) EnsureReadyToPlay() error {
	if r.Status != StatusReadyToPlay {
		return apperr.InvalidRequest("cannot cancel/reschedule because it's not in ready to play status")
	}
	return nil
}

// Settle is the only transition out of READY_TO_PLAY. It moves the
// reservation into a terminal state and splits the deposit: the refund
// goes back to the guest, the remainder stays on the reservation, so
// value + refundValue always equals the original deposit.
func (r *Reservation) Settle(to ReservationStatus, refund decimal.Decimal) error {
	if err := r.EnsureReadyToPlay(); err != nil {
		return err
	}
	if to != StatusCancelled && to != StatusRescheduled {
		return apperr.InvalidRequest("reservation can only be settled as cancelled or rescheduled")
	}
	r.Status = to
	r.Value = r.Value.Sub(refund)
	r.RefundValue = refund
	return nil
}
