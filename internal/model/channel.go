package model

import (
	"time"
)

type Channel struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Type      string    `gorm:"size:20;index" json:"type"` // bongo, movie, intl
	Name      string    `gorm:"size:100;not null" json:"name"`
	Img       string    `gorm:"size:500" json:"img"`
	URL       string    `gorm:"size:500" json:"url"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Channel) TableName() string {
	return "channels"
}
