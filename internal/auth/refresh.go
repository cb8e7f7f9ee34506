package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Refresh tokens are opaque strings kept in Redis with a TTL; the value is the
// username the token continues a session for.

const refreshTokenTTL = 7 * 24 * time.Hour

const refreshKeyPrefix = "auth:refresh:"

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRefreshStore(rdb *redis.Client, ctx context.Context) *RefreshStore {
	return &RefreshStore{rdb: rdb, ctx: ctx}
}

// Issue mints a fresh opaque token for the user and stores it with a TTL.
func (s *RefreshStore) Issue(username string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.rdb.Set(s.ctx, refreshKeyPrefix+token, username, refreshTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store refresh token: %w", err)
	}
	return token, nil
}

// Lookup returns the username a refresh token belongs to.
func (s *RefreshStore) Lookup(token string) (string, error) {
	username, err := s.rdb.Get(s.ctx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// Revoke forgets the token; subsequent lookups fail.
func (s *RefreshStore) Revoke(token string) error {
	return s.rdb.Del(s.ctx, refreshKeyPrefix+token).Err()
}
