// Package sqlitemigrate applies embedded SQL migrations to SQLite databases.
//
// Migration files are applied in lexical order, once each, and recorded in
// the schema_migrations table. A file may carry "-- +migrate Up" and
// "-- +migrate Down" markers; only the Up section is executed.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const (
	migrationTable = "schema_migrations"
	upMarker       = "-- +migrate Up"
	downMarker     = "-- +migrate Down"
)

// Apply executes every pending migration under root and returns the keys of
// the migrations it applied during this call.
func Apply(ctx context.Context, db *sql.DB, migrations fs.FS, root string) ([]string, error) {
	if db == nil {
		return nil, errors.New("sql db is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	files, err := listMigrations(migrations, root)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return nil, fmt.Errorf("ensure migration table: %w", err)
	}

	var applied []string
	for _, file := range files {
		key := file
		if root != "." {
			key = path.Join(root, file)
		}
		done, err := isApplied(ctx, db, key)
		if err != nil {
			return applied, fmt.Errorf("check migration %s: %w", key, err)
		}
		if done {
			continue
		}
		content, err := fs.ReadFile(migrations, path.Join(root, file))
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", key, err)
		}
		up := UpSection(string(content))
		if strings.TrimSpace(up) == "" {
			continue
		}
		if err := applyOne(ctx, db, key, up); err != nil {
			return applied, err
		}
		applied = append(applied, key)
	}
	return applied, nil
}

// UpSection returns the SQL between the Up and Down markers. Content
// without an Up marker is returned whole.
func UpSection(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	body := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		body = body[:downIdx]
	}
	return body
}

// IsAlreadyExists reports whether err is SQLite rejecting DDL that has
// already taken effect.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func listMigrations(migrations fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(migrations, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func applyOne(ctx context.Context, db *sql.DB, key, up string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", key, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, up); err != nil && !IsAlreadyExists(err) {
		return fmt.Errorf("exec migration %s: %w", key, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		key, time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("record migration %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", key, err)
	}
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, key string) (bool, error) {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", key).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
