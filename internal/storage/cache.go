// Package storage keeps the last trending results on disk so the discovery
// tab has something to show before the first fetch completes.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ytget/feed-client/internal/model"
)

// Cache wraps the SQLite connection.
type Cache struct {
	conn *sql.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A single writer keeps SQLITE_BUSY away from the refresh path.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	c := &Cache{conn: conn}
	if err := c.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.conn.Close()
}

func (c *Cache) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trending (
		platform TEXT NOT NULL,
		rank INTEGER NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		heat INTEGER NOT NULL DEFAULT 0,
		tag TEXT NOT NULL DEFAULT '',
		fetched_at INTEGER NOT NULL,
		PRIMARY KEY (platform, rank)
	);
	`
	_, err := c.conn.Exec(schema)
	return err
}

// SaveTrending replaces the cached list for platform.
func (c *Cache) SaveTrending(ctx context.Context, platform string, topics []model.TrendingTopic) error {
	tx, err := c.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trending WHERE platform = ?`, platform); err != nil {
		return fmt.Errorf("clear trending: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trending (platform, rank, title, url, heat, tag, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range topics {
		if _, err := stmt.ExecContext(ctx, platform, t.Rank, t.Title, t.URL, t.Heat, t.Tag, t.FetchedAt.UnixMilli()); err != nil {
			return fmt.Errorf("insert topic %d: %w", t.Rank, err)
		}
	}
	return tx.Commit()
}

// LoadTrending returns the cached list for platform ordered by rank. An empty
// cache yields an empty slice.
func (c *Cache) LoadTrending(ctx context.Context, platform string) ([]model.TrendingTopic, error) {
	rows, err := c.conn.QueryContext(ctx, `
		SELECT rank, title, url, heat, tag, fetched_at
		FROM trending WHERE platform = ? ORDER BY rank`, platform)
	if err != nil {
		return nil, fmt.Errorf("query trending: %w", err)
	}
	defer rows.Close()

	var topics []model.TrendingTopic
	for rows.Next() {
		var t model.TrendingTopic
		var fetchedAt int64
		if err := rows.Scan(&t.Rank, &t.Title, &t.URL, &t.Heat, &t.Tag, &fetchedAt); err != nil {
			return nil, err
		}
		t.FetchedAt = time.UnixMilli(fetchedAt)
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// LastFetched reports when platform was last saved; ok is false when nothing
// is cached.
func (c *Cache) LastFetched(ctx context.Context, platform string) (time.Time, bool, error) {
	var ms sql.NullInt64
	err := c.conn.QueryRowContext(ctx, `SELECT MAX(fetched_at) FROM trending WHERE platform = ?`, platform).Scan(&ms)
	if err != nil {
		return time.Time{}, false, err
	}
	if !ms.Valid {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms.Int64), true, nil
}
