package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByPhone(phone string) (*model.User, error) {
	var user model.User
	err := r.db.Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByPhone(phone string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// UpdateSubscription overwrites the embedded entitlement columns. A nil
// entitlement clears them.
func (r *UserRepository) UpdateSubscription(id int64, e *model.Entitlement) error {
	fields := map[string]interface{}{
		"subscription_plan":       nil,
		"subscription_amount":     nil,
		"subscription_issued_at":  nil,
		"subscription_expires_at": nil,
	}
	if e != nil {
		fields["subscription_plan"] = e.Plan
		fields["subscription_amount"] = e.Amount
		fields["subscription_issued_at"] = e.IssuedAt
		fields["subscription_expires_at"] = e.ExpiresAt
	}
	return r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// ClearExpiredSubscriptions nulls out entitlements whose expiry has passed
// and returns how many rows changed.
func (r *UserRepository) ClearExpiredSubscriptions(now time.Time) (int64, error) {
	result := r.db.Model(&model.User{}).
		Where("subscription_expires_at IS NOT NULL AND subscription_expires_at <= ?", now).
		Updates(map[string]interface{}{
			"subscription_plan":       nil,
			"subscription_amount":     nil,
			"subscription_issued_at":  nil,
			"subscription_expires_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}
