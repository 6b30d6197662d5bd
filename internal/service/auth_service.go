package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/config"
	"github.com/swajayfour/swajay_go_server/internal/model"
	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/pkg/jwt"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/repository"
)

var (
	ErrPhoneExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown phone and wrong password;
	// the caller must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	userRepo *repository.UserRepository
	sink     mirror.Sink
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sink mirror.Sink, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sink:     sink,
		cfg:      cfg,
	}
}

// Signup registers a new account. The phone number is the natural key.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	exists, err := s.userRepo.ExistsByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPhoneExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.mirrorUsers()

	return &dto.SignupResponse{
		Success: true,
		UserID:  user.ID,
	}, nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Phone, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  buildUserInfo(user),
	}, nil
}

func (s *AuthService) GetUserByID(id int64) (*model.User, error) {
	return s.userRepo.GetByID(id)
}

func buildUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Phone:        user.Phone,
		Subscription: user.Entitlement(),
	}
}

func (s *AuthService) mirrorUsers() {
	users, err := s.userRepo.List()
	if err != nil {
		return
	}
	s.sink.TrySave("users.json", users)
}
