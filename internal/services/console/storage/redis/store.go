// Package redis stores console sessions in Redis so several console
// replicas can share logins.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/timeouts"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
)

// KeyPrefix namespaces session keys.
const KeyPrefix = "driveshare:console:session:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store is a Redis-backed session.Store. Keys expire with the session.
type Store struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

type record struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
}

// Open connects and pings Redis.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: timeouts.StoreDial,
	})
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.StoreDial)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *goredis.Client) *Store {
	return &Store{client: client, prefix: KeyPrefix, now: time.Now}
}

// Close closes the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Get loads a session. A missing key is reported as ok=false.
func (s *Store) Get(ctx context.Context, id string) (session.Credentials, bool, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.Credentials{}, false, nil
	}
	if err != nil {
		return session.Credentials{}, false, fmt.Errorf("get session: %w", err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return session.Credentials{}, false, fmt.Errorf("decode session: %w", err)
	}
	creds := session.Credentials{
		AccessToken:  rec.AccessToken,
		RefreshToken: rec.RefreshToken,
		CreatedAt:    rec.CreatedAt,
		ExpiresAt:    rec.ExpiresAt,
	}
	if creds.Expired(s.now()) {
		return session.Credentials{}, false, nil
	}
	return creds, true, nil
}

// Put writes a session with a TTL matching its expiry.
func (s *Store) Put(ctx context.Context, id string, creds session.Credentials) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}
	var ttl time.Duration
	if !creds.ExpiresAt.IsZero() {
		ttl = creds.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Delete(ctx, id)
		}
	}
	data, err := json.Marshal(record{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		CreatedAt:    creds.CreatedAt,
		ExpiresAt:    creds.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

var _ session.Store = (*Store)(nil)
