package model

import (
	"time"
)

// Entitlement is a time-boxed access grant attached to a user. A new purchase
// replaces the previous entitlement outright; remaining time is not carried
// over.
type Entitlement struct {
	Plan      string    `json:"plan"`
	Amount    int64     `json:"amount"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"validUntil"`
}

// Active reports whether the entitlement still covers the given instant.
// Expiry at exactly now counts as inactive.
func (e *Entitlement) Active(now time.Time) bool {
	return e != nil && now.Before(e.ExpiresAt)
}
