package cron

import (
	"log"
	"time"

	"github.com/swajayfour/swajay_go_server/internal/service"
)

// Service runs the background jobs: a daily sweep of expired entitlements
// and an hourly snapshot mirror of the store documents.
type Service struct {
	entitlementService *service.EntitlementService
	adminService       *service.AdminService
	stopChan           chan struct{}
}

func NewService(entitlementService *service.EntitlementService, adminService *service.AdminService) *Service {
	return &Service{
		entitlementService: entitlementService,
		adminService:       adminService,
		stopChan:           make(chan struct{}),
	}
}

func (s *Service) Start() {
	go s.runDailySweep()
	go s.runSnapshotMirror()
	log.Println("Cron service started (entitlement sweep + snapshot mirror)")
}

func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

// runDailySweep clears expired entitlements at UTC midnight.
func (s *Service) runDailySweep() {
	now := time.Now().UTC()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	timer := time.NewTimer(nextMidnight.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.sweepExpired()
			timer.Reset(24 * time.Hour)
		}
	}
}

func (s *Service) sweepExpired() {
	cleared, err := s.entitlementService.SweepExpired()
	if err != nil {
		log.Printf("Failed to sweep expired entitlements: %v", err)
		return
	}
	if cleared > 0 {
		log.Printf("Entitlement sweep cleared %d expired subscriptions", cleared)
	}
}

// runSnapshotMirror pushes a full snapshot to the mirror sink every hour.
func (s *Service) runSnapshotMirror() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.adminService.MirrorAll()
		}
	}
}
