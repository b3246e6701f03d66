package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists visits in a local SQLite database. This is the only state
// the frontend keeps on disk; all blog content stays in the backend.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    visitor_id TEXT NOT NULL,
    session_id TEXT NOT NULL,
    ip_hash TEXT NOT NULL,
    path TEXT NOT NULL,
    referrer TEXT,
    user_agent TEXT,
    timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
CREATE INDEX IF NOT EXISTS idx_visits_visitor_id ON visits(visitor_id);
CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// SaveVisit stores a new visit.
func (s *Store) SaveVisit(v *Visit) error {
	_, err := s.db.Exec(
		`INSERT INTO visits (visitor_id, session_id, ip_hash, path, referrer, user_agent, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.SessionID, v.IPHash, v.Path, v.Referrer, v.UserAgent, v.Timestamp,
	)
	return err
}

// Stats aggregates visits over the past days.
func (s *Store) Stats(days int) (Stats, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	stats := Stats{Days: days}

	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT visitor_id), COUNT(*) FROM visits WHERE timestamp >= ?`, since,
	).Scan(&stats.UniqueVisitors, &stats.TotalViews)
	if err != nil {
		return Stats{}, err
	}

	rows, err := s.db.Query(
		`SELECT path, COUNT(*) AS views FROM visits WHERE timestamp >= ?
		 GROUP BY path ORDER BY views DESC LIMIT 10`, since,
	)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return Stats{}, err
		}
		stats.TopPages = append(stats.TopPages, p)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	dayRows, err := s.db.Query(
		`SELECT date(timestamp) AS day, COUNT(*) FROM visits WHERE timestamp >= ?
		 GROUP BY day ORDER BY day`, since,
	)
	if err != nil {
		return Stats{}, err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var d DailyView
		if err := dayRows.Scan(&d.Date, &d.Views); err != nil {
			return Stats{}, err
		}
		stats.DailyViews = append(stats.DailyViews, d)
	}
	return stats, dayRows.Err()
}
