package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("checkout:session:%d", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (*checkout.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read checkout session")
	}

	var sess checkout.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout session")
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *checkout.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "failed to encode checkout session")
	}
	if err := s.client.Set(ctx, sessionKey(sess.UserID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write checkout session")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete checkout session")
	}
	return nil
}
