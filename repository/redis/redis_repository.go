package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/item-location/cmd/redis"
	"github.com/muhammadheryan/item-location/model"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix   = "session:"
	locationTreeKey = "warehouse:location:flat"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, operatorID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetLocations(ctx context.Context) ([]model.WarehouseLocation, bool, error)
	SetLocations(ctx context.Context, locations []model.WarehouseLocation, ttl time.Duration) error
	InvalidateLocations(ctx context.Context) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with operatorID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, operatorID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, operatorID, ttl).Err()
}

// GetSession retrieves operatorID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}

// GetLocations returns the cached flat location list. The bool is false on
// a cache miss or when Redis is not configured.
func (r *redis) GetLocations(ctx context.Context) ([]model.WarehouseLocation, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, false, nil
	}
	raw, err := client.Get(ctx, locationTreeKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var locations []model.WarehouseLocation
	if err := json.Unmarshal(raw, &locations); err != nil {
		return nil, false, err
	}
	return locations, true, nil
}

func (r *redis) SetLocations(ctx context.Context, locations []model.WarehouseLocation, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return client.Set(ctx, locationTreeKey, raw, ttl).Err()
}

func (r *redis) InvalidateLocations(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, locationTreeKey).Err()
}
