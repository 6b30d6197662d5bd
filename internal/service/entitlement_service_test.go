package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
	"github.com/swajayfour/swajay_go_server/internal/plan"
	"github.com/swajayfour/swajay_go_server/internal/repository"
	"github.com/swajayfour/swajay_go_server/internal/testutil"
)

func setupEntitlementService(t *testing.T) (*EntitlementService, *repository.UserRepository, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := NewEntitlementService(userRepo, plan.NewCatalog(nil))

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return svc, userRepo, db, cleanup
}

func TestEntitlementService_Quote(t *testing.T) {
	svc, _, _, cleanup := setupEntitlementService(t)
	defer cleanup()

	p, err := svc.Quote("weekly")
	require.NoError(t, err)
	assert.Equal(t, 7, p.DurationDays)
	assert.Equal(t, int64(1000), p.Price)

	_, err = svc.Quote("nonsense")
	assert.ErrorIs(t, err, plan.ErrInvalidPlan)
}

func TestEntitlementService_Grant_ExactWindow(t *testing.T) {
	svc, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	cases := []struct {
		planID string
		days   int
	}{
		{"daily", 1},
		{"weekly", 7},
		{"monthly", 30},
		{"bimonthly", 60},
		{"semiannual", 180},
		{"annual", 365},
	}

	for _, tc := range cases {
		t.Run(tc.planID, func(t *testing.T) {
			user := testutil.TestUser(t, db)

			e, err := svc.Grant(user, tc.planID, 0)
			require.NoError(t, err)

			// Exactly durationDays * 86400 seconds.
			assert.Equal(t, time.Duration(tc.days)*24*time.Hour, e.ExpiresAt.Sub(e.IssuedAt))
			assert.Equal(t, now, e.IssuedAt)
		})
	}
}

func TestEntitlementService_Grant_Overwrites(t *testing.T) {
	svc, userRepo, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user := testutil.TestUser(t, db)

	_, err := svc.Grant(user, "daily", 200)
	require.NoError(t, err)

	e, err := svc.Grant(user, "monthly", 2500)
	require.NoError(t, err)

	// The new entitlement replaces the old one outright: exactly one window,
	// reflecting monthly, no leftover daily time added.
	stored, err := userRepo.GetByPhone(user.Phone)
	require.NoError(t, err)
	require.NotNil(t, stored.Subscription)
	assert.Equal(t, "monthly", stored.Subscription.Plan)
	assert.Equal(t, int64(2500), stored.Subscription.Amount)
	assert.WithinDuration(t, now.Add(30*24*time.Hour), stored.Subscription.ExpiresAt, time.Second)
	assert.WithinDuration(t, e.ExpiresAt, stored.Subscription.ExpiresAt, time.Second)
}

func TestEntitlementService_Grant_InvalidPlan(t *testing.T) {
	svc, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	_, err := svc.Grant(user, "forever", 0)
	assert.ErrorIs(t, err, plan.ErrInvalidPlan)
}

func TestEntitlementService_IsActive_Boundaries(t *testing.T) {
	svc, _, _, cleanup := setupEntitlementService(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Nil entitlement is never active.
	assert.False(t, svc.IsActive(nil))

	// Expiry strictly in the future: active.
	assert.True(t, svc.IsActive(&model.Entitlement{ExpiresAt: now.Add(time.Second)}))

	// Expiry exactly now resolves to inactive (fail-closed).
	assert.False(t, svc.IsActive(&model.Entitlement{ExpiresAt: now}))

	// Past expiry: inactive.
	assert.False(t, svc.IsActive(&model.Entitlement{ExpiresAt: now.Add(-time.Second)}))
}

func TestEntitlementService_Status(t *testing.T) {
	svc, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	t.Run("unknown phone", func(t *testing.T) {
		resp, err := svc.Status("255799999999")
		require.NoError(t, err)
		assert.False(t, resp.HasSubscription)
		assert.Nil(t, resp.Subscription)
	})

	t.Run("never paid", func(t *testing.T) {
		user := testutil.TestUser(t, db)

		resp, err := svc.Status(user.Phone)
		require.NoError(t, err)
		assert.False(t, resp.HasSubscription)
		assert.Nil(t, resp.Subscription)
	})

	t.Run("active subscription", func(t *testing.T) {
		user := testutil.TestUser(t, db,
			testutil.WithEntitlement("weekly", 1000, now, now.Add(7*24*time.Hour)))

		resp, err := svc.Status(user.Phone)
		require.NoError(t, err)
		assert.True(t, resp.HasSubscription)
		require.NotNil(t, resp.Subscription)
		assert.Equal(t, "weekly", resp.Subscription.Plan)
	})

	t.Run("expired subscription still returned", func(t *testing.T) {
		user := testutil.TestUser(t, db,
			testutil.WithEntitlement("daily", 200, now.Add(-48*time.Hour), now.Add(-24*time.Hour)))

		resp, err := svc.Status(user.Phone)
		require.NoError(t, err)
		assert.False(t, resp.HasSubscription)
		require.NotNil(t, resp.Subscription)
		assert.Equal(t, "daily", resp.Subscription.Plan)
	})

	t.Run("expiry is evaluated per query", func(t *testing.T) {
		user := testutil.TestUser(t, db,
			testutil.WithEntitlement("weekly", 1000, now, now.Add(7*24*time.Hour)))

		resp, err := svc.Status(user.Phone)
		require.NoError(t, err)
		assert.True(t, resp.HasSubscription)

		// Advance virtual time past the window: same stored state, opposite
		// answer.
		svc.now = func() time.Time { return now.Add(7*24*time.Hour + time.Second) }

		resp, err = svc.Status(user.Phone)
		require.NoError(t, err)
		assert.False(t, resp.HasSubscription)
	})
}

func TestEntitlementService_SweepExpired(t *testing.T) {
	svc, userRepo, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	expired := testutil.TestUser(t, db,
		testutil.WithEntitlement("daily", 200, now.Add(-48*time.Hour), now.Add(-24*time.Hour)))
	active := testutil.TestUser(t, db,
		testutil.WithEntitlement("weekly", 1000, now, now.Add(7*24*time.Hour)))
	never := testutil.TestUser(t, db)

	cleared, err := svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	stored, err := userRepo.GetByPhone(expired.Phone)
	require.NoError(t, err)
	assert.Nil(t, stored.Subscription)

	stored, err = userRepo.GetByPhone(active.Phone)
	require.NoError(t, err)
	assert.NotNil(t, stored.Subscription)

	stored, err = userRepo.GetByPhone(never.Phone)
	require.NoError(t, err)
	assert.Nil(t, stored.Subscription)
}

func TestEntitlementService_ConcurrentGrants(t *testing.T) {
	svc, userRepo, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Grant(user, "weekly", 1000)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := userRepo.GetByPhone(user.Phone)
	require.NoError(t, err)
	require.NotNil(t, stored.Subscription)
	assert.Equal(t, "weekly", stored.Subscription.Plan)
}
