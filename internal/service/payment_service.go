package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/plan"
	"github.com/swajayfour/swajay_go_server/internal/repository"
)

// ErrAmountMismatch — the client supplied an amount that disagrees with the
// catalog price.
var ErrAmountMismatch = errors.New("amount does not match plan price")

// DefaultProvider is recorded when the request names no mobile-money
// operator.
const DefaultProvider = "simulated"

// PaymentService runs the simulated settlement flow:
// Requested -> Logged -> EntitlementAttached | EntitlementSkipped.
// It never contacts a payment network; once validation passes the payment
// always succeeds.
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	userRepo    *repository.UserRepository
	entitlement *EntitlementService
	catalog     *plan.Catalog
	sink        mirror.Sink
}

func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	userRepo *repository.UserRepository,
	entitlement *EntitlementService,
	catalog *plan.Catalog,
	sink mirror.Sink,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		entitlement: entitlement,
		catalog:     catalog,
		sink:        sink,
	}
}

// Pay validates the request, appends the payment record and, when the phone
// belongs to a registered account, attaches the entitlement. A payment from
// an unregistered phone is logged and accepted without an entitlement.
func (s *PaymentService) Pay(req *dto.PayRequest) (*dto.PayResponse, error) {
	// Requested: nothing is written until validation passes.
	p, err := s.catalog.Resolve(req.Plan)
	if err != nil {
		return nil, err
	}
	if req.Amount != 0 && req.Amount != p.Price {
		return nil, ErrAmountMismatch
	}

	provider := req.Provider
	if provider == "" {
		provider = DefaultProvider
	}

	// Logged: the record is appended unconditionally and never rolled back.
	payment := &model.Payment{
		Plan:     p.ID,
		Amount:   p.Price,
		Phone:    req.Phone,
		Provider: provider,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	// EntitlementAttached or EntitlementSkipped, depending on whether the
	// payer is registered.
	attached := false
	user, err := s.userRepo.GetByPhone(req.Phone)
	switch {
	case err == nil:
		if _, err := s.entitlement.Grant(user, p.ID, p.Price); err != nil {
			return nil, err
		}
		attached = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Unregistered payer: keep the payment, skip the entitlement.
	default:
		return nil, err
	}

	s.mirrorPayments()
	if attached {
		s.mirrorUsers()
	}

	return &dto.PayResponse{
		Success: true,
		Message: "Payment simulated",
		Payment: payment,
	}, nil
}

// Plans returns the purchasable plans in id order.
func (s *PaymentService) Plans() []plan.Plan {
	return s.catalog.List()
}

func (s *PaymentService) mirrorPayments() {
	payments, err := s.paymentRepo.List()
	if err != nil {
		return
	}
	s.sink.TrySave("payments.json", payments)
}

func (s *PaymentService) mirrorUsers() {
	users, err := s.userRepo.List()
	if err != nil {
		return
	}
	s.sink.TrySave("users.json", users)
}
