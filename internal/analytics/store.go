// Package analytics records privacy-conscious page views and browser
// performance beacons in SQLite and serves them to the admin dashboard.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one tracked page view. Raw IPs are never stored.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Beacon is one client-side measurement, e.g. a web-vitals sample.
type Beacon struct {
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

type BeaconStat struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64        `json:"total_visitors"`
	UniqueVisitors   int64        `json:"unique_visitors"`
	VisitorsToday    int64        `json:"visitors_today"`
	VisitorsThisWeek int64        `json:"visitors_this_week"`
	TopPaths         []PathStat   `json:"top_paths"`
	RecentVisitors   []Visit      `json:"recent_visitors"`
	Beacons          []BeaconStat `json:"beacons"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);

CREATE TABLE IF NOT EXISTS beacons (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	value REAL NOT NULL,
	path TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_beacons_timestamp ON beacons(timestamp);
`

// Store wraps the analytics database. Timestamps are stored as unix
// seconds so range queries do not depend on driver time formatting.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// SQLite allows one writer; keep a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate analytics db: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertVisit stores v.
func (s *Store) InsertVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// InsertBeacon stores b.
func (s *Store) InsertBeacon(ctx context.Context, b Beacon) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO beacons (name, value, path, timestamp) VALUES (?, ?, ?, ?)`,
		b.Name, b.Value, b.Path, b.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("insert beacon: %w", err)
	}
	return nil
}

// Cleanup deletes visits and beacons older than retention and returns the
// number of rows removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()

	var total int64
	for _, table := range []string{"visitors", "beacons"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// Stats summarises the stored data.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.Beacons, err = s.beaconStats(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var out []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, fmt.Errorf("top paths: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// RecentVisits returns the latest visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var (
			v  Visit
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("recent visits: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) beaconStats(ctx context.Context) ([]BeaconStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, COUNT(*), AVG(value)
		FROM beacons
		GROUP BY name
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("beacon stats: %w", err)
	}
	defer rows.Close()

	var out []BeaconStat
	for rows.Next() {
		var b BeaconStat
		if err := rows.Scan(&b.Name, &b.Count, &b.Average); err != nil {
			return nil, fmt.Errorf("beacon stats: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
