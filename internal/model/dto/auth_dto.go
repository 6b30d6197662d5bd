package dto

import (
	"github.com/swajayfour/swajay_go_server/internal/model"
)

// SignupRequest — name is optional, phone is the natural key. The contract is
// presence-only; length policy belongs to the client.
type SignupRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"userId"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo is the account view returned to the client.
type UserInfo struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Phone        string             `json:"phone"`
	Subscription *model.Entitlement `json:"subscription"`
}
