package repository

import (
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
)

// PaymentRepository is append-only: records are created and read, never
// updated or deleted.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) GetByID(id int64) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByPhone(phone string) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("phone = ?", phone).Order("id").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) List() ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Order("id").Find(&payments).Error
	return payments, err
}
