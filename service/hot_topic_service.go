package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"wxwriter/dao"
	"wxwriter/model"
)

type topicStore interface {
	List(f dao.HotTopicFilter) ([]model.HotTopic, int64, error)
	GetByID(id uint64) (*model.HotTopic, error)
	ListTrending(limit int) ([]model.HotTopic, error)
	ListByCategory(category string, limit int) ([]model.HotTopic, error)
	Create(topic *model.HotTopic) error
}

const trendingCacheKey = "wx:topics:trending:%d"
const trendingCacheTTL = 60 * time.Second

// HotTopicService 热点话题的查询与录入。trending 结果带 redis 读缓存，
// redis 不可用时直接回源。
type HotTopicService struct {
	store topicStore
	rdb   *redis.Client
}

func NewHotTopicService(store topicStore, rdb *redis.Client) *HotTopicService {
	return &HotTopicService{store: store, rdb: rdb}
}

// List 分页查询
func (s *HotTopicService) List(f dao.HotTopicFilter) ([]model.HotTopic, int64, error) {
	return s.store.List(f)
}

// GetByID 查询单条话题
func (s *HotTopicService) GetByID(id uint64) (*model.HotTopic, error) {
	topic, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return topic, nil
}

// Trending 返回高热度话题（hotness_score > 80），结果缓存 60 秒
func (s *HotTopicService) Trending(ctx context.Context, limit int) ([]model.HotTopic, error) {
	key := fmt.Sprintf(trendingCacheKey, limit)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var topics []model.HotTopic
			if err := json.Unmarshal([]byte(cached), &topics); err == nil {
				return topics, nil
			}
		}
	}

	topics, err := s.store.ListTrending(limit)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(topics); err == nil {
			if err := s.rdb.Set(ctx, key, data, trendingCacheTTL).Err(); err != nil {
				slog.Warn("trending cache write failed", "error", err)
			}
		}
	}
	return topics, nil
}

// ByCategory 按分类取热度最高的若干条
func (s *HotTopicService) ByCategory(category string, limit int) ([]model.HotTopic, error) {
	return s.store.ListByCategory(category, limit)
}

// Create 录入新话题
func (s *HotTopicService) Create(topic *model.HotTopic) error {
	return s.store.Create(topic)
}
