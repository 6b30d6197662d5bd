package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/repository"
	"github.com/swajayfour/swajay_go_server/internal/testutil"
)

func setupChannelService(t *testing.T, rdb *redis.Client) (*ChannelService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	channelRepo := repository.NewChannelRepository(db)
	svc := NewChannelService(channelRepo, rdb, mirror.NewNoop())

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return svc, db, cleanup
}

func TestChannelService_SeedIfEmpty(t *testing.T) {
	svc, _, cleanup := setupChannelService(t, nil)
	defer cleanup()

	require.NoError(t, svc.SeedIfEmpty())

	channels, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 4)

	byID := make(map[string]model.Channel, len(channels))
	for _, c := range channels {
		byID[c.ID] = c
	}
	assert.Contains(t, byID, "az1")
	assert.Contains(t, byID, "sps")
	assert.Equal(t, "Azam Sports 1", byID["az1"].Name)
	assert.Equal(t, "intl", byID["sps"].Type)

	// Idempotent: a second boot does not duplicate the seed.
	require.NoError(t, svc.SeedIfEmpty())
	channels, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, channels, 4)
}

func TestChannelService_SeedIfEmpty_KeepsExisting(t *testing.T) {
	svc, db, cleanup := setupChannelService(t, nil)
	defer cleanup()

	testutil.TestChannel(t, db, "custom", "Custom Channel")

	require.NoError(t, svc.SeedIfEmpty())

	channels, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "custom", channels[0].ID)
}

func TestChannelService_Get(t *testing.T) {
	svc, db, cleanup := setupChannelService(t, nil)
	defer cleanup()

	testutil.TestChannel(t, db, "az1", "Azam Sports 1")

	channel, err := svc.Get("az1")
	require.NoError(t, err)
	assert.Equal(t, "Azam Sports 1", channel.Name)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestChannelService_Seed(t *testing.T) {
	svc, db, cleanup := setupChannelService(t, nil)
	defer cleanup()

	testutil.TestChannel(t, db, "old", "Old Channel")

	count, err := svc.Seed(context.Background(), []model.Channel{
		{ID: "new1", Type: "bongo", Name: "New One", Img: "/a.jpg", URL: "#"},
		{ID: "new2", Type: "intl", Name: "New Two", Img: "/b.jpg", URL: "#"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The old set is gone.
	_, err = svc.Get("old")
	assert.ErrorIs(t, err, ErrChannelNotFound)

	channel, err := svc.Get("new1")
	require.NoError(t, err)
	assert.Equal(t, "New One", channel.Name)
}

func TestChannelService_Seed_EmptyKeepsExisting(t *testing.T) {
	svc, db, cleanup := setupChannelService(t, nil)
	defer cleanup()

	testutil.TestChannel(t, db, "keep", "Keep Me")

	count, err := svc.Seed(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	channel, err := svc.Get("keep")
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", channel.Name)
}

func TestChannelService_List_Cache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	svc, db, cleanup := setupChannelService(t, rdb)
	defer cleanup()

	testutil.TestChannel(t, db, "az1", "Azam Sports 1")

	ctx := context.Background()

	// First read populates the cache.
	channels, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.True(t, mr.Exists(channelCacheKey))

	// Subsequent reads are served from the cache even after the store changes.
	testutil.TestChannel(t, db, "az2", "Azam Sports 2")
	channels, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, channels, 1)

	// A seed invalidates the cache.
	_, err = svc.Seed(ctx, []model.Channel{
		{ID: "fresh", Type: "bongo", Name: "Fresh", Img: "/f.jpg", URL: "#"},
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists(channelCacheKey))

	channels, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "fresh", channels[0].ID)
}

func TestChannelService_List_CacheDownFallsThrough(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	svc, db, cleanup := setupChannelService(t, rdb)
	defer cleanup()

	testutil.TestChannel(t, db, "az1", "Azam Sports 1")

	// Kill the cache backend; reads must still succeed from the store.
	mr.Close()

	channels, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, channels, 1)
}
