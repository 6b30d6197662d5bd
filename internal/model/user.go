package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100" json:"name"`
	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Current entitlement, null until a payment attaches one. Stored as
	// nullable columns so the account row stays a single record.
	SubscriptionPlan      *string    `gorm:"size:20" json:"-"`
	SubscriptionAmount    *int64     `json:"-"`
	SubscriptionIssuedAt  *time.Time `json:"-"`
	SubscriptionExpiresAt *time.Time `json:"-"`

	Subscription *Entitlement `gorm:"-" json:"subscription"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// AfterFind exposes the entitlement columns as a single nullable object.
func (u *User) AfterFind(_ *gorm.DB) error {
	u.Subscription = u.Entitlement()
	return nil
}

// Entitlement composes the subscription columns, or nil when the user has
// never paid (or the entitlement was cleared).
func (u *User) Entitlement() *Entitlement {
	if u.SubscriptionPlan == nil || u.SubscriptionExpiresAt == nil {
		return nil
	}
	e := &Entitlement{
		Plan:      *u.SubscriptionPlan,
		ExpiresAt: *u.SubscriptionExpiresAt,
	}
	if u.SubscriptionAmount != nil {
		e.Amount = *u.SubscriptionAmount
	}
	if u.SubscriptionIssuedAt != nil {
		e.IssuedAt = *u.SubscriptionIssuedAt
	}
	return e
}

// SetEntitlement overwrites the subscription columns in place. Nil clears
// them.
func (u *User) SetEntitlement(e *Entitlement) {
	if e == nil {
		u.SubscriptionPlan = nil
		u.SubscriptionAmount = nil
		u.SubscriptionIssuedAt = nil
		u.SubscriptionExpiresAt = nil
		u.Subscription = nil
		return
	}
	plan, amount, issued, expires := e.Plan, e.Amount, e.IssuedAt, e.ExpiresAt
	u.SubscriptionPlan = &plan
	u.SubscriptionAmount = &amount
	u.SubscriptionIssuedAt = &issued
	u.SubscriptionExpiresAt = &expires
	u.Subscription = e
}
