// Package sqlite provides a SQLite-backed ScenarioStore. Parameters are kept
// as a JSON document in a single column; the store never needs to query
// individual fields, only recall whole parameter sets by name.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quantdash/retirement-planner/internal/domain"
	"github.com/quantdash/retirement-planner/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	name       TEXT PRIMARY KEY,
	params     TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store implements store.ScenarioStore on SQLite.
type Store struct {
	db *sql.DB
}

var _ store.ScenarioStore = (*Store)(nil)

// New opens (or creates) the database at path and migrates the schema.
// WAL mode so the serve handlers can read while a save is in flight.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Save(scenario domain.Scenario) error {
	params, err := json.Marshal(scenario.Params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO scenarios (name, params, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET params = excluded.params, updated_at = CURRENT_TIMESTAMP`,
		scenario.Name, string(params))
	if err != nil {
		return fmt.Errorf("failed to save scenario %q: %w", scenario.Name, err)
	}
	return nil
}

func (s *Store) List() ([]domain.Scenario, error) {
	rows, err := s.db.Query(`SELECT name, params FROM scenarios ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var out []domain.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *sc)
	}
	return out, rows.Err()
}

func (s *Store) Get(name string) (*domain.Scenario, error) {
	row := s.db.QueryRow(`SELECT name, params FROM scenarios WHERE name = ?`, name)
	sc, err := scanScenario(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return sc, err
}

func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM scenarios WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete scenario %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanScenario(scan func(dest ...any) error) (*domain.Scenario, error) {
	var name, params string
	if err := scan(&name, &params); err != nil {
		return nil, err
	}
	sc := domain.Scenario{Name: name}
	if err := json.Unmarshal([]byte(params), &sc.Params); err != nil {
		return nil, fmt.Errorf("failed to decode params for %q: %w", name, err)
	}
	return &sc, nil
}
