package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cartTTL keeps abandoned carts from living in redis forever.
const cartTTL = 24 * time.Hour

type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(ctx context.Context, rdb *redis.Client) (*RedisRepository, error) {
	if rdb == nil {
		return nil, errors.New("redis client must be non-nil")
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisRepository{rdb: rdb}, nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func (r *RedisRepository) Get(ctx context.Context, userID string) (*Cart, error) {
	val, err := r.rdb.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{}, nil
		}
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RedisRepository) Save(ctx context.Context, userID string, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKey(userID), data, cartTTL).Err()
}

func (r *RedisRepository) Delete(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, cartKey(userID)).Err()
}
