package dto

import (
	"github.com/swajayfour/swajay_go_server/internal/model"
)

// PayRequest — amount is optional; when present it must match the catalog
// price for the plan. Provider is the mobile-money operator label
// (Airtel/Vodacom/Tigo/M-Pesa/Halotel), free text.
type PayRequest struct {
	Plan     string `json:"plan" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Amount   int64  `json:"amount"`
	Provider string `json:"provider"`
}

type PayResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Payment *model.Payment `json:"payment"`
}

type SubscriptionStatusResponse struct {
	HasSubscription bool               `json:"hasSubscription"`
	Subscription    *model.Entitlement `json:"subscription"`
}
