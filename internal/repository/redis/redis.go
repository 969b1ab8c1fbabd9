// Package redis stores submissions and signups in Redis. Submissions are a
// JSON list, newest first; each signup is a key per lower-cased email written
// with SETNX so the first writer wins.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"careers/internal/model"
	"careers/internal/repository"
)

// Store implements both repositories over one client. Keys are namespaced
// with prefix.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewStore(rdb redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = "careers"
	}
	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) applicationsKey() string { return s.prefix + ":applications" }

func (s *Store) signupKey(email string) string {
	return s.prefix + ":signup:" + strings.ToLower(strings.TrimSpace(email))
}

// Applications returns the store as an ApplicationRepository.
func (s *Store) Applications() repository.ApplicationRepository { return applications{s} }

// Signups returns the store as a SignupRepository.
func (s *Store) Signups() repository.SignupRepository { return signups{s} }

// Ping reports whether the server answers, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

type applications struct{ s *Store }

func (a applications) Create(ctx context.Context, app *model.ApplicationSubmission) (*model.ApplicationSubmission, error) {
	b, err := json.Marshal(app)
	if err != nil {
		return nil, fmt.Errorf("encode application: %w", err)
	}
	if err := a.s.rdb.LPush(ctx, a.s.applicationsKey(), b).Err(); err != nil {
		return nil, err
	}
	return app, nil
}

func (a applications) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ApplicationSubmission], error) {
	key := a.s.applicationsKey()

	var (
		lenCmd   *redis.IntCmd
		rangeCmd *redis.StringSliceCmd
	)
	_, err := a.s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		lenCmd = p.LLen(ctx, key)
		rangeCmd = p.LRange(ctx, key, int64(pq.Offset), int64(pq.Offset+pq.Limit-1))
		return nil
	})
	if err != nil {
		return nil, err
	}

	raw := rangeCmd.Val()
	items := make([]model.ApplicationSubmission, 0, len(raw))
	for _, r := range raw {
		var app model.ApplicationSubmission
		if err := json.Unmarshal([]byte(r), &app); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		items = append(items, app)
	}
	return &repository.PageResult[model.ApplicationSubmission]{
		Items: items,
		Total: int(lenCmd.Val()),
	}, nil
}

// accountRecord keeps the hash, which model.SignupAccount hides from JSON.
type accountRecord struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type signups struct{ s *Store }

func (g signups) Create(ctx context.Context, acc *model.SignupAccount) (*model.SignupAccount, error) {
	b, err := json.Marshal(accountRecord{
		ID:           acc.ID,
		FullName:     acc.FullName,
		Email:        acc.Email,
		PasswordHash: acc.PasswordHash,
		CreatedAt:    acc.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode account: %w", err)
	}
	ok, err := g.s.rdb.SetNX(ctx, g.s.signupKey(acc.Email), b, 0).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrDuplicateEmail
	}
	return acc, nil
}
