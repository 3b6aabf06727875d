package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"
)

// savedKey is the namespaced key holding the JSON-serialized saved list.
const savedKey = "ecoTravel_saved"

// SQLite stores the durable list in a local single-file database: one
// key/value table, one key, the whole list as a JSON document.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("dir", dir))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", path))
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to create kv table")
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]model.Itinerary, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, savedKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Itinerary{}, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read saved itineraries")
	}

	var itineraries []model.Itinerary
	if err := json.Unmarshal([]byte(raw), &itineraries); err != nil {
		return nil, goerr.Wrap(err, "failed to parse saved itineraries")
	}
	if itineraries == nil {
		itineraries = []model.Itinerary{}
	}

	return itineraries, nil
}

func (s *SQLite) Save(ctx context.Context, itineraries []model.Itinerary) error {
	if itineraries == nil {
		itineraries = []model.Itinerary{}
	}

	raw, err := json.Marshal(itineraries)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize saved itineraries")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		savedKey, string(raw))
	if err != nil {
		return goerr.Wrap(err, "failed to write saved itineraries")
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
