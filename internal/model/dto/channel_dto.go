package dto

import (
	"github.com/swajayfour/swajay_go_server/internal/model"
)

type SeedRequest struct {
	Channels []model.Channel `json:"channels"`
}

type SeedResponse struct {
	OK    bool  `json:"ok"`
	Count int64 `json:"count"`
}

// DumpResponse mirrors the shape of the legacy single-document store.
type DumpResponse struct {
	Users        []model.User    `json:"users"`
	Payments     []model.Payment `json:"payments"`
	Channels     []model.Channel `json:"channels"`
	ActiveTrials int             `json:"active_trials"`
}
