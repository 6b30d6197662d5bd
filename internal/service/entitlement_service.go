package service

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/plan"
	"github.com/swajayfour/swajay_go_server/internal/repository"
)

// EntitlementService maps purchases onto validity windows and answers
// "is this user currently entitled" queries. It is the only writer of the
// subscription columns.
type EntitlementService struct {
	userRepo *repository.UserRepository
	catalog  *plan.Catalog

	// Serializes the read-modify-write on one account's entitlement when
	// concurrent payments land on the same phone.
	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex

	now func() time.Time
}

func NewEntitlementService(userRepo *repository.UserRepository, catalog *plan.Catalog) *EntitlementService {
	return &EntitlementService{
		userRepo: userRepo,
		catalog:  catalog,
		locks:    make(map[int64]*sync.Mutex),
		now:      time.Now,
	}
}

// Quote resolves a plan id to its duration and price.
func (s *EntitlementService) Quote(planID string) (plan.Plan, error) {
	return s.catalog.Resolve(planID)
}

// Grant attaches a fresh entitlement to the account, replacing any prior one
// outright. Remaining time on the old entitlement is discarded; there is no
// stacking or proration.
func (s *EntitlementService) Grant(user *model.User, planID string, amount int64) (*model.Entitlement, error) {
	p, err := s.catalog.Resolve(planID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entitlement := &model.Entitlement{
		Plan:      p.ID,
		Amount:    amount,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(p.DurationDays) * 24 * time.Hour),
	}

	lock := s.accountLock(user.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.userRepo.UpdateSubscription(user.ID, entitlement); err != nil {
		return nil, err
	}
	user.SetEntitlement(entitlement)

	return entitlement, nil
}

// IsActive reports whether the entitlement covers the instant. Evaluated per
// call against the clock; never cached.
func (s *EntitlementService) IsActive(e *model.Entitlement) bool {
	return e.Active(s.now())
}

// Status answers the subscription check for a phone number. Unknown phones
// are not an error: they simply have no subscription.
func (s *EntitlementService) Status(phone string) (*dto.SubscriptionStatusResponse, error) {
	user, err := s.userRepo.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.SubscriptionStatusResponse{HasSubscription: false}, nil
		}
		return nil, err
	}

	entitlement := user.Entitlement()
	return &dto.SubscriptionStatusResponse{
		HasSubscription: entitlement.Active(s.now()),
		Subscription:    entitlement,
	}, nil
}

// SweepExpired clears entitlements whose expiry has passed. Housekeeping
// only: Status and IsActive never depend on the sweep having run.
func (s *EntitlementService) SweepExpired() (int64, error) {
	return s.userRepo.ClearExpiredSubscriptions(s.now())
}

// SetClock overrides the time source. Tests use it to move the clock.
func (s *EntitlementService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *EntitlementService) accountLock(id int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
