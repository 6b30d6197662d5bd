package repository

import (
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
)

type ChannelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) GetByID(id string) (*model.Channel, error) {
	var channel model.Channel
	err := r.db.Where("id = ?", id).First(&channel).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *ChannelRepository) List() ([]model.Channel, error) {
	var channels []model.Channel
	err := r.db.Order("created_at").Find(&channels).Error
	return channels, err
}

func (r *ChannelRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Channel{}).Count(&count).Error
	return count, err
}

// Replace swaps the whole channel set in one transaction.
func (r *ChannelRepository) Replace(channels []model.Channel) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Channel{}).Error; err != nil {
			return err
		}
		if len(channels) == 0 {
			return nil
		}
		return tx.Create(&channels).Error
	})
}

func (r *ChannelRepository) CreateBatch(channels []model.Channel) error {
	if len(channels) == 0 {
		return nil
	}
	return r.db.Create(&channels).Error
}
