package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/triptrio/internal/models"
)

const redisKey = "favorites"

var ErrEmptyPayload = errors.New("payload is required")

// Store keeps saved results, newest first.
type Store interface {
	List(ctx context.Context) ([]models.Favorite, error)
	Add(ctx context.Context, payload json.RawMessage) (models.Favorite, error)
	Remove(ctx context.Context, id string) (bool, error)
}

func newFavorite(payload json.RawMessage, now time.Time) (models.Favorite, error) {
	if len(payload) == 0 || string(payload) == "null" {
		return models.Favorite{}, ErrEmptyPayload
	}
	return models.Favorite{
		ID:        uuid.NewString(),
		Payload:   payload,
		CreatedAt: now.UTC(),
	}, nil
}

func sortNewestFirst(items []models.Favorite) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// RedisStore keeps favorites in a single Redis hash keyed by favorite ID.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) List(ctx context.Context) ([]models.Favorite, error) {
	raw, err := s.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, err
	}

	items := make([]models.Favorite, 0, len(raw))
	for _, v := range raw {
		var f models.Favorite
		if err := json.Unmarshal([]byte(v), &f); err != nil {
			continue
		}
		items = append(items, f)
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *RedisStore) Add(ctx context.Context, payload json.RawMessage) (models.Favorite, error) {
	f, err := newFavorite(payload, s.now())
	if err != nil {
		return models.Favorite{}, err
	}

	data, err := json.Marshal(f)
	if err != nil {
		return models.Favorite{}, err
	}
	if err := s.client.HSet(ctx, redisKey, f.ID, data).Err(); err != nil {
		return models.Favorite{}, err
	}
	return f, nil
}

func (s *RedisStore) Remove(ctx context.Context, id string) (bool, error) {
	n, err := s.client.HDel(ctx, redisKey, id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryStore is used when Redis is disabled; contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]models.Favorite
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]models.Favorite), now: time.Now}
}

func (s *MemoryStore) List(_ context.Context) ([]models.Favorite, error) {
	s.mu.RLock()
	items := make([]models.Favorite, 0, len(s.items))
	for _, f := range s.items {
		items = append(items, f)
	}
	s.mu.RUnlock()

	sortNewestFirst(items)
	return items, nil
}

func (s *MemoryStore) Add(_ context.Context, payload json.RawMessage) (models.Favorite, error) {
	f, err := newFavorite(payload, s.now())
	if err != nil {
		return models.Favorite{}, err
	}

	s.mu.Lock()
	s.items[f.ID] = f
	s.mu.Unlock()
	return f, nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}
