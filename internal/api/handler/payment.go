package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
	"github.com/swajayfour/swajay_go_server/internal/plan"
	"github.com/swajayfour/swajay_go_server/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ListPlans returns the purchasable plans for the payment page.
// GET /api/plans
func (h *PaymentHandler) ListPlans(c *gin.Context) {
	response.OK(c, h.paymentService.Plans())
}

// Pay runs the simulated settlement and, for registered phones, attaches the
// subscription.
// POST /api/pay
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "plan and phone required")
		return
	}

	resp, err := h.paymentService.Pay(&req)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrInvalidPlan):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAmountMismatch):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, resp)
}
