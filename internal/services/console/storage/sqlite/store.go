// Package sqlite persists console sessions in a local SQLite file so logins
// survive a console restart.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/storage/sqlitemigrate"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// timeFormat is fixed-width so stored timestamps compare correctly as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store is a SQLite-backed session.Store.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (and migrates) a SQLite store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get loads a session. Expired rows are deleted and reported as missing.
func (s *Store) Get(ctx context.Context, id string) (session.Credentials, bool, error) {
	if err := s.ready(ctx); err != nil {
		return session.Credentials{}, false, err
	}
	var access, refresh, createdAt, expiresAt string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT access_token, refresh_token, created_at, expires_at FROM console_sessions WHERE session_id = ?`,
		id,
	).Scan(&access, &refresh, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Credentials{}, false, nil
	}
	if err != nil {
		return session.Credentials{}, false, fmt.Errorf("get session: %w", err)
	}

	creds := session.Credentials{
		AccessToken:  access,
		RefreshToken: refresh,
		CreatedAt:    parseTime(createdAt),
		ExpiresAt:    parseTime(expiresAt),
	}
	if creds.Expired(s.now()) {
		if err := s.Delete(ctx, id); err != nil {
			return session.Credentials{}, false, err
		}
		return session.Credentials{}, false, nil
	}
	return creds, true, nil
}

// Put inserts or replaces a session.
func (s *Store) Put(ctx context.Context, id string, creds session.Credentials) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}
	createdAt := creds.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO console_sessions (session_id, access_token, refresh_token, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   access_token = excluded.access_token,
		   refresh_token = excluded.refresh_token,
		   created_at = excluded.created_at,
		   expires_at = excluded.expires_at`,
		id, creds.AccessToken, creds.RefreshToken, formatTime(createdAt), formatTime(creds.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Delete removes a session; missing ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM console_sessions WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every session whose expiry is at or before now.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM console_sessions WHERE expires_at != '' AND expires_at <= ?`,
		formatTime(s.now().UTC()),
	)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeFormat)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

var _ session.Store = (*Store)(nil)
