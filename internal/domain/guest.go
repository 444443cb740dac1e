package domain

import "time"

type Guest struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
