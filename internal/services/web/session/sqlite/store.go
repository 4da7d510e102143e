// Package sqlite persists web sessions in SQLite so they survive restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/louisbranch/portfolio.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
	"github.com/louisbranch/portfolio.space/internal/services/web/session/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store implements session.Store on a SQLite database.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create implements session.Store.
func (s *Store) Create(ctx context.Context, sess session.Session) (session.Session, error) {
	if strings.TrimSpace(sess.Subject) == "" {
		return session.Session{}, errors.New("session subject is required")
	}
	if sess.ExpiresAt.IsZero() {
		return session.Session{}, errors.New("session expiry is required")
	}
	sess.ID = uuid.NewString()
	sess.ExpiresAt = sess.ExpiresAt.UTC()
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO web_sessions (id, subject, display_name, email, access_token, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.Subject,
		sess.DisplayName,
		sess.Email,
		sess.AccessToken,
		toMillis(s.now()),
		toMillis(sess.ExpiresAt),
	)
	if err != nil {
		return session.Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// Get implements session.Store.
func (s *Store) Get(ctx context.Context, id string) (session.Session, error) {
	var (
		sess      session.Session
		expiresAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT id, subject, display_name, email, access_token, expires_at
  FROM web_sessions
 WHERE id = ?`, strings.TrimSpace(id)).Scan(
		&sess.ID,
		&sess.Subject,
		&sess.DisplayName,
		&sess.Email,
		&sess.AccessToken,
		&expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Session{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	sess.ExpiresAt = fromMillis(expiresAt)
	if sess.Expired(s.now()) {
		if err := s.Delete(ctx, sess.ID); err != nil {
			return session.Session{}, err
		}
		return session.Session{}, session.ErrExpired
	}
	return sess, nil
}

// Delete implements session.Store.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every session that has expired and reports how many
// were removed.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, toMillis(s.now()))
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}
