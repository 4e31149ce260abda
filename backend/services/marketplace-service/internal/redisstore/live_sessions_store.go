package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chargeshare/backend/services/marketplace-service/internal/charging"
)

// LiveSessionStore keeps the fixed parameters of in-progress charges so any
// process can project the current state from the clock.
type LiveSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLiveSessionStore returns redis-backed store.
func NewLiveSessionStore(client *redis.Client, ttl time.Duration) *LiveSessionStore {
	return &LiveSessionStore{client: client, ttl: ttl}
}

func (s *LiveSessionStore) key(orderID string) string {
	return fmt.Sprintf("charging:order:%s", orderID)
}

// Save records the session for its order.
func (s *LiveSessionStore) Save(ctx context.Context, sess charging.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sess.OrderID), data, s.ttl).Err()
}

// Get returns the session for an order, or redis.Nil when absent.
func (s *LiveSessionStore) Get(ctx context.Context, orderID string) (*charging.Session, error) {
	result, err := s.client.Get(ctx, s.key(orderID)).Result()
	if err != nil {
		return nil, err
	}
	var sess charging.Session
	if err := json.Unmarshal([]byte(result), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes the session once the order reaches a terminal state.
func (s *LiveSessionStore) Delete(ctx context.Context, orderID string) error {
	return s.client.Del(ctx, s.key(orderID)).Err()
}
