package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const currentVersion = 2

// dateLayout is the on-disk format of every calendar date column.
const dateLayout = "2006-01-02"

type Store struct {
	db *sql.DB
}

// New opens the SQLite database at dsn, migrates the schema and seeds the
// sample studio data. Use ":memory:" for a catalog that lives only as long as
// the process.
func New(dsn string) (*Store, error) {
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps an in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store holding the sample data.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	if version < 2 {
		if err := s.migrateV2(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS clients (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		company     TEXT NOT NULL,
		balance     INTEGER NOT NULL DEFAULT 0,
		projects    INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'active',
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		client      TEXT NOT NULL,
		progress    INTEGER NOT NULL DEFAULT 0,
		hours       REAL NOT NULL DEFAULT 0,
		budget      INTEGER NOT NULL DEFAULT 0,
		spent       INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS work_types (
		project_id  INTEGER NOT NULL REFERENCES projects(id),
		id          TEXT NOT NULL,
		name        TEXT NOT NULL,
		color       TEXT NOT NULL,
		hours       REAL NOT NULL DEFAULT 0,
		position    INTEGER NOT NULL,
		PRIMARY KEY (project_id, id)
	);

	CREATE TABLE IF NOT EXISTS issues (
		id          TEXT PRIMARY KEY,
		project_id  INTEGER NOT NULL REFERENCES projects(id),
		title       TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'todo',
		assignee    TEXT NOT NULL DEFAULT '',
		estimate    REAL NOT NULL DEFAULT 0,
		actual_time REAL NOT NULL DEFAULT 0,
		work_type   TEXT NOT NULL DEFAULT '',
		linear_id   TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_issues_project ON issues(project_id);

	CREATE TABLE IF NOT EXISTS team_members (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		initials    TEXT NOT NULL DEFAULT '',
		role        TEXT NOT NULL,
		rate        INTEGER NOT NULL DEFAULT 0,
		rate_type   TEXT NOT NULL DEFAULT 'hourly',
		total_hours REAL NOT NULL DEFAULT 0,
		salary      INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS invoices (
		id                 TEXT PRIMARY KEY,
		client             TEXT NOT NULL,
		project            TEXT NOT NULL,
		amount             INTEGER NOT NULL,
		date               TEXT NOT NULL,
		due_date           TEXT NOT NULL,
		status             TEXT NOT NULL DEFAULT 'draft',
		include_in_finance INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS income (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		client      TEXT NOT NULL,
		project     TEXT NOT NULL,
		member      TEXT NOT NULL DEFAULT '',
		amount      INTEGER NOT NULL,
		date        TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS expenses (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		category    TEXT NOT NULL,
		amount      INTEGER NOT NULL,
		date        TEXT NOT NULL,
		project     TEXT NOT NULL DEFAULT '',
		client      TEXT NOT NULL DEFAULT '',
		member      TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS salaries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		role        TEXT NOT NULL,
		amount      INTEGER NOT NULL,
		status      TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recurring_invoices (
		id            TEXT PRIMARY KEY,
		client        TEXT NOT NULL,
		project       TEXT NOT NULL,
		amount        INTEGER NOT NULL,
		frequency     TEXT NOT NULL,
		next_due_date TEXT NOT NULL,
		status        TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recurring_expenses (
		id            TEXT PRIMARY KEY,
		category      TEXT NOT NULL,
		amount        INTEGER NOT NULL,
		frequency     TEXT NOT NULL,
		next_due_date TEXT NOT NULL,
		status        TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS project_time_entries (
		id           INTEGER PRIMARY KEY,
		date         TEXT NOT NULL,
		project_id   INTEGER NOT NULL REFERENCES projects(id),
		project_name TEXT NOT NULL,
		member_id    INTEGER NOT NULL REFERENCES team_members(id),
		member_name  TEXT NOT NULL,
		hours        REAL NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		issue_ids    TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_project_entries_date ON project_time_entries(date);

	CREATE TABLE IF NOT EXISTS timesheet_entries (
		id           INTEGER PRIMARY KEY,
		date         TEXT NOT NULL,
		project      TEXT NOT NULL,
		member       TEXT NOT NULL,
		duration     TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS integrations (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'disconnected',
		icon        TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) migrateV2() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(seedSQL); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
