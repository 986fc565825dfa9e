package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tastybites/internal/domain"
)

type RedisStore struct {
	Client     *redis.Client
	SessionTTL time.Duration
	CartTTL    time.Duration
}

func NewRedisStore(client *redis.Client, sessionTTL, cartTTL time.Duration) *RedisStore {
	return &RedisStore{Client: client, SessionTTL: sessionTTL, CartTTL: cartTTL}
}

func sessionKey(token string) string { return "session:" + token }
func cartKey(session string) string  { return "cart:" + session }

func (s *RedisStore) SaveSession(ctx context.Context, token string, userID int) error {
	return s.Client.Set(ctx, sessionKey(token), strconv.Itoa(userID), s.SessionTTL).Err()
}

// SessionUserID returns (0, nil) for unknown or expired tokens.
func (s *RedisStore) SessionUserID(ctx context.Context, token string) (int, error) {
	val, err := s.Client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}

// GetCart returns an empty cart for sessions that have none stored.
func (s *RedisStore) GetCart(ctx context.Context, session string) (*domain.Cart, error) {
	val, err := s.Client.Get(ctx, cartKey(session)).Result()
	if err == redis.Nil {
		return &domain.Cart{Entries: []domain.CartEntry{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, err
	}
	if cart.Entries == nil {
		cart.Entries = []domain.CartEntry{}
	}
	return &cart, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, session string, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKey(session), payload, s.CartTTL).Err()
}

func (s *RedisStore) DeleteCart(ctx context.Context, session string) error {
	return s.Client.Del(ctx, cartKey(session)).Err()
}

func (s *RedisStore) FeedbackMarkerKey(orderID int) string {
	return "feedback:" + strconv.Itoa(orderID)
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	res, err := s.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *RedisStore) SetMarker(ctx context.Context, key string) error {
	return s.Client.Set(ctx, key, "1", s.CartTTL).Err()
}
