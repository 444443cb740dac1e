package domain

import "time"

// PlayTime is the fixed length of every bookable slot.
const PlayTime = time.Hour

// Schedule is the bookable unit: a one hour window on one court.
type Schedule struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CourtID       string    `gorm:"index" json:"courtId"`
	StartDateTime time.Time `gorm:"index" json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
