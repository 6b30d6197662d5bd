package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/internal/model"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/repository"
)

var ErrChannelNotFound = errors.New("channel not found")

const (
	channelCacheKey = "channels"
	channelCacheTTL = 60 * time.Second
)

// ChannelService serves channel metadata with a short-lived redis cache in
// front of the store. Cache failures fall through to the store silently.
type ChannelService struct {
	channelRepo *repository.ChannelRepository
	rdb         *redis.Client // optional
	sink        mirror.Sink
}

func NewChannelService(channelRepo *repository.ChannelRepository, rdb *redis.Client, sink mirror.Sink) *ChannelService {
	return &ChannelService{
		channelRepo: channelRepo,
		rdb:         rdb,
		sink:        sink,
	}
}

// defaultChannels seed the store on first boot.
func defaultChannels() []model.Channel {
	return []model.Channel{
		{ID: "az1", Type: "bongo", Name: "Azam Sports 1", Img: "/assets/images/azam1.jpg", URL: "#"},
		{ID: "az2", Type: "bongo", Name: "Azam Sports 2", Img: "/assets/images/azam2.jpg", URL: "#"},
		{ID: "azm", Type: "movie", Name: "Azam Cinema", Img: "/assets/images/azam_cinema.jpg", URL: "#"},
		{ID: "sps", Type: "intl", Name: "SuperSport", Img: "/assets/images/supersport.jpg", URL: "#"},
	}
}

// SeedIfEmpty populates the sample channels when the store has none.
func (s *ChannelService) SeedIfEmpty() error {
	count, err := s.channelRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.channelRepo.CreateBatch(defaultChannels()); err != nil {
		return err
	}
	s.mirrorChannels()
	return nil
}

// List returns all channels, from cache when possible.
func (s *ChannelService) List(ctx context.Context) ([]model.Channel, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, channelCacheKey).Result(); err == nil {
			var channels []model.Channel
			if err := json.Unmarshal([]byte(cached), &channels); err == nil {
				return channels, nil
			}
		}
	}

	channels, err := s.channelRepo.List()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(channels); err == nil {
			s.rdb.Set(ctx, channelCacheKey, data, channelCacheTTL)
		}
	}
	return channels, nil
}

func (s *ChannelService) Get(id string) (*model.Channel, error) {
	channel, err := s.channelRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	return channel, nil
}

// Seed replaces the channel set. An empty payload keeps the existing set,
// matching the legacy admin behavior.
func (s *ChannelService) Seed(ctx context.Context, channels []model.Channel) (int64, error) {
	if len(channels) > 0 {
		if err := s.channelRepo.Replace(channels); err != nil {
			return 0, err
		}
		s.invalidateCache(ctx)
		s.mirrorChannels()
	}
	return s.channelRepo.Count()
}

func (s *ChannelService) invalidateCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, channelCacheKey)
	}
}

func (s *ChannelService) mirrorChannels() {
	channels, err := s.channelRepo.List()
	if err != nil {
		return
	}
	s.sink.TrySave("channels.json", channels)
}
