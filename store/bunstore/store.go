// Package bunstore persists provider sessions in SQLite so they survive
// application restarts.
package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rapidphotoflow/go-auth/provider/cognito"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// ProviderSession is the stored token bundle. One row per client key,
// upserted on every save.
type ProviderSession struct {
	bun.BaseModel `bun:"table:provider_sessions,alias:ps"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	ClientKey    string    `bun:"client_key,notnull,unique"`
	IDToken      string    `bun:"id_token,notnull"`
	AccessToken  string    `bun:"access_token,notnull"`
	RefreshToken string    `bun:"refresh_token"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

// Store is a cognito.TokenStore backed by a bun SQLite database.
type Store struct {
	db        *bun.DB
	clientKey string
	now       func() time.Time
}

// StoreOption customizes store construction.
type StoreOption func(*Store)

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// Open opens (or creates) the database at path and prepares the schema.
// The clientKey partitions rows so several app clients can share a file.
func Open(path, clientKey string, opts ...StoreOption) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	s := NewStore(db, clientKey, opts...)
	if err := s.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// NewStore wraps an existing bun database.
func NewStore(db *bun.DB, clientKey string, opts ...StoreOption) *Store {
	s := &Store{
		db:        db,
		clientKey: clientKey,
		now:       time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Init creates the schema when missing.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*ProviderSession)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) Load(ctx context.Context) (*cognito.Tokens, error) {
	session := &ProviderSession{}
	err := s.db.NewSelect().
		Model(session).
		Where("client_key = ?", s.clientKey).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &cognito.Tokens{
		IDToken:      session.IDToken,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

func (s *Store) Save(ctx context.Context, tokens cognito.Tokens) error {
	now := s.now()
	session := &ProviderSession{
		ID:           uuid.New(),
		ClientKey:    s.clientKey,
		IDToken:      tokens.IDToken,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := s.db.NewInsert().
		Model(session).
		On("CONFLICT (client_key) DO UPDATE").
		Set("id_token = EXCLUDED.id_token").
		Set("access_token = EXCLUDED.access_token").
		Set("refresh_token = EXCLUDED.refresh_token").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*ProviderSession)(nil)).
		Where("client_key = ?", s.clientKey).
		Exec(ctx)
	return err
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ cognito.TokenStore = (*Store)(nil)
