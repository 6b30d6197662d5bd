package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
	"github.com/swajayfour/swajay_go_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new account.
// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "phone and password required")
		return
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, service.ErrPhoneExists) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, resp)
}

// Login verifies credentials and returns a 30-day session token.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "phone and password required")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, resp)
}
