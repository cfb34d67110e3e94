// Package cache memoizes the deterministic candidate synthesis of a search.
// Only the candidates are stored: totals, filters and sorting depend on fields
// outside the key and are recomputed on every request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/triptrio/internal/models"
)

// Cache stores synthesized candidates before totals, filters and sorting are applied.
type Cache interface {
	Get(ctx context.Context, req *models.SearchRequest) ([]models.Bundle, bool)
	Set(ctx context.Context, req *models.SearchRequest, bundles []models.Bundle) error
	Close() error
}

// RedisCache stores candidates as JSON under "bundles:<sha256>" with a TTL.
// Any Redis or decode failure reads as a miss.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

// NewRedisClient connects and pings; the client is shared by the cache and the favorites store.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultRedisConfig().TTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, req *models.SearchRequest) ([]models.Bundle, bool) {
	key := generateKey(req)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var bundles []models.Bundle
	if err := json.Unmarshal(data, &bundles); err != nil {
		return nil, false
	}

	return bundles, true
}

func (c *RedisCache) Set(ctx context.Context, req *models.SearchRequest, bundles []models.Bundle) error {
	key := generateKey(req)

	data, err := json.Marshal(bundles)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache always misses; used when CACHE_ENABLED is off.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req *models.SearchRequest) ([]models.Bundle, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req *models.SearchRequest, bundles []models.Bundle) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes every request field that changes synthesized candidates.
// Filters, sort and sort basis are applied after the cache and are left out.
func generateKey(req *models.SearchRequest) string {
	keyData := struct {
		Origin           string
		Destination      string
		DepartDate       string
		ReturnDate       string
		RoundTrip        bool
		Passengers       int
		PassengersAdults int
		Cabin            models.Cabin
		Currency         string
		IncludeHotel     bool
		HotelCheckIn     *string
		HotelCheckOut    *string
		Nights           *int
		MinHotelStar     *float64
	}{
		Origin:           req.Origin,
		Destination:      req.Destination,
		DepartDate:       req.DepartDate,
		ReturnDate:       req.Return(),
		RoundTrip:        req.RoundTrip,
		Passengers:       req.Passengers,
		PassengersAdults: req.PassengersAdults,
		Cabin:            req.Cabin,
		Currency:         req.Currency,
		IncludeHotel:     req.IncludeHotel,
		HotelCheckIn:     req.HotelCheckIn,
		HotelCheckOut:    req.HotelCheckOut,
		Nights:           req.Nights,
		MinHotelStar:     req.MinHotelStar,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "bundles:" + hex.EncodeToString(hash[:])
}
