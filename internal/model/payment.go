package model

import (
	"time"
)

// Payment is an append-only record of a simulated settlement. The phone may
// belong to no registered user; the record is kept either way.
type Payment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Plan      string    `gorm:"size:20;not null" json:"plan"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Phone     string    `gorm:"size:20;not null;index" json:"phone"`
	Provider  string    `gorm:"size:50;default:simulated" json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
