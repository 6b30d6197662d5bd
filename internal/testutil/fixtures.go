package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
)

// TestUser creates a registered account. The default password hash matches
// no plaintext; use WithPasswordHash when a login must succeed.
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Name:         fmt.Sprintf("Test User %d", time.Now().UnixNano()%10000),
		Phone:        fmt.Sprintf("2557%08d", time.Now().UnixNano()%100000000),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // bcrypt placeholder
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithPhone sets the phone number.
func WithPhone(phone string) func(*model.User) {
	return func(u *model.User) {
		u.Phone = phone
	}
}

// WithPasswordHash sets the credential hash.
func WithPasswordHash(hash string) func(*model.User) {
	return func(u *model.User) {
		u.PasswordHash = hash
	}
}

// WithEntitlement attaches a subscription window.
func WithEntitlement(plan string, amount int64, issuedAt, expiresAt time.Time) func(*model.User) {
	return func(u *model.User) {
		u.SetEntitlement(&model.Entitlement{
			Plan:      plan,
			Amount:    amount,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		})
	}
}

// TestPayment appends a payment record.
func TestPayment(t *testing.T, db *gorm.DB, phone, plan string, amount int64) *model.Payment {
	t.Helper()

	payment := &model.Payment{
		Plan:     plan,
		Amount:   amount,
		Phone:    phone,
		Provider: "simulated",
	}

	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}

	return payment
}

// TestChannel creates a channel.
func TestChannel(t *testing.T, db *gorm.DB, id, name string, opts ...func(*model.Channel)) *model.Channel {
	t.Helper()

	channel := &model.Channel{
		ID:   id,
		Type: "bongo",
		Name: name,
		Img:  "/assets/images/" + id + ".jpg",
		URL:  "#",
	}

	for _, opt := range opts {
		opt(channel)
	}

	if err := db.Create(channel).Error; err != nil {
		t.Fatalf("Failed to create test channel: %v", err)
	}

	return channel
}

// WithType sets the channel category.
func WithType(channelType string) func(*model.Channel) {
	return func(c *model.Channel) {
		c.Type = channelType
	}
}
