package labels

import (
	"bufio"
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/gxt2/internal/strhash"
)

//go:embed schema.sql
var schemaSQL string

// Schema versions:
// 0 - labels table only
// 1 - index on label for reverse queries
const currentSchemaVersion = 1

// ErrEmptyLabel is returned when adding a blank label.
var ErrEmptyLabel = errors.New("labels: empty label")

// Cache is an open label database.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the database at path and brings its schema up to
// date, creating missing parent directories. Opening the same path
// repeatedly is safe.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create label cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open label cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to label cache: %w", err)
	}

	// SQLite allows one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return runMigrations(db)
}

func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < 1 {
		if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_labels_label ON labels(label)`); err != nil {
			return fmt.Errorf("migrate to v1: %w", err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Add records label and returns its hash. Adding a label twice is a no-op.
func (c *Cache) Add(ctx context.Context, label string) (uint32, error) {
	return c.add(ctx, c.db, label, "")
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (c *Cache) add(ctx context.Context, db execer, label, source string) (uint32, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	hash := strhash.Hash(label)
	_, err := db.ExecContext(ctx, `
		INSERT INTO labels (hash, label, source)
		VALUES (?, ?, ?)
		ON CONFLICT(hash, label) DO NOTHING
	`, int64(hash), label, source)
	if err != nil {
		return 0, fmt.Errorf("add label %q: %w", label, err)
	}
	return hash, nil
}

// Lookup returns the label recorded for hash. When several labels
// collide on one hash the lexically smallest is returned.
func (c *Cache) Lookup(ctx context.Context, hash uint32) (string, bool, error) {
	var label string
	err := c.db.QueryRowContext(ctx, `
		SELECT label FROM labels WHERE hash = ? ORDER BY label LIMIT 1
	`, int64(hash)).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup %08X: %w", hash, err)
	}
	return label, true, nil
}

// Count returns the number of recorded labels.
func (c *Cache) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM labels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count labels: %w", err)
	}
	return n, nil
}

// ImportLines records one label per line of r, ignoring blank lines and
// surrounding whitespace. The import is one transaction.
func (c *Cache) ImportLines(ctx context.Context, r io.Reader, source string) (int, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		label := strings.TrimSpace(sc.Text())
		if label == "" {
			continue
		}
		if _, err := c.add(ctx, tx, label, source); err != nil {
			return 0, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read labels: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}
