package service

import (
	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/pkg/ws"
	"github.com/swajayfour/swajay_go_server/internal/repository"
)

// AdminService exposes the full-store dump and the periodic snapshot mirror.
type AdminService struct {
	userRepo    *repository.UserRepository
	paymentRepo *repository.PaymentRepository
	channelRepo *repository.ChannelRepository
	hub         *ws.Hub
	sink        mirror.Sink
}

func NewAdminService(
	userRepo *repository.UserRepository,
	paymentRepo *repository.PaymentRepository,
	channelRepo *repository.ChannelRepository,
	hub *ws.Hub,
	sink mirror.Sink,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		channelRepo: channelRepo,
		hub:         hub,
		sink:        sink,
	}
}

// Dump returns the whole store in the legacy single-document shape.
func (s *AdminService) Dump() (*dto.DumpResponse, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List()
	if err != nil {
		return nil, err
	}
	channels, err := s.channelRepo.List()
	if err != nil {
		return nil, err
	}

	activeTrials := 0
	if s.hub != nil {
		activeTrials = s.hub.ActiveCount()
	}

	return &dto.DumpResponse{
		Users:        users,
		Payments:     payments,
		Channels:     channels,
		ActiveTrials: activeTrials,
	}, nil
}

// MirrorAll pushes a snapshot of every store document to the mirror sink.
// Best effort: list failures skip that document.
func (s *AdminService) MirrorAll() {
	if users, err := s.userRepo.List(); err == nil {
		s.sink.TrySave("users.json", users)
	}
	if payments, err := s.paymentRepo.List(); err == nil {
		s.sink.TrySave("payments.json", payments)
	}
	if channels, err := s.channelRepo.List(); err == nil {
		s.sink.TrySave("channels.json", channels)
	}
}
