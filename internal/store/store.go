// ABOUTME: SQLite store for exporting a generated CRM dataset.
// ABOUTME: Handles database initialization, migrations, and connection management.

package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Migration version constants
const (
	MigrationV1 = 1 // CRM tables with foreign keys
	MigrationV2 = 2 // Lookup indexes for status and date filters
)

// CurrentSchemaVersion is the target version for the database schema
const CurrentSchemaVersion = MigrationV2

// Store is an exported CRM dataset in SQLite.
type Store struct {
	db *sql.DB
}

// New opens or creates the database at dbPath and brings its schema up to date.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "store: failed to connect to database")
	}

	// Single writer; the export is one transaction anyway
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: %s", pragma)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs all pending migrations
func (s *Store) migrate() error {
	if err := s.createMigrationsTable(); err != nil {
		return eris.Wrap(err, "store: failed to create migrations table")
	}

	currentVersion, err := s.getCurrentMigrationVersion()
	if err != nil {
		return eris.Wrap(err, "store: failed to get current migration version")
	}

	zap.L().Debug("database schema version",
		zap.Int("current", currentVersion), zap.Int("target", CurrentSchemaVersion))

	if currentVersion < MigrationV1 {
		if err := s.migrateV1(); err != nil {
			return eris.Wrap(err, "store: migration v1 failed")
		}
	}

	if currentVersion < MigrationV2 {
		if err := s.migrateV2(); err != nil {
			return eris.Wrap(err, "store: migration v2 failed")
		}
	}

	return nil
}

// createMigrationsTable creates the schema_migrations tracking table
func (s *Store) createMigrationsTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			description TEXT
		)
	`)
	return err
}

// getCurrentMigrationVersion retrieves the current schema version
func (s *Store) getCurrentMigrationVersion() (int, error) {
	var version int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(version), 0) FROM schema_migrations
	`).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// recordMigration records a completed migration
func (s *Store) recordMigration(version int, description string) error {
	_, err := s.db.Exec(`
		INSERT INTO schema_migrations (version, description)
		VALUES (?, ?)
	`, version, description)
	return err
}

// migrateV1 creates the CRM tables. Notes point at contacts, prospects at
// accounts, and activities at both their prospect and account.
func (s *Store) migrateV1() error {
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		account_id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		industry TEXT,
		company_type TEXT,
		annual_revenue INTEGER,
		employee_count INTEGER,
		website TEXT,
		street TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		country TEXT,
		phone TEXT,
		email TEXT,
		status TEXT,
		created_date TEXT,
		last_contact_date TEXT,
		account_owner TEXT
	);

	CREATE TABLE IF NOT EXISTS contacts (
		contact_id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		first_name TEXT,
		last_name TEXT,
		title TEXT,
		email TEXT,
		phone TEXT,
		is_primary INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS notes (
		note_id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		related_contact TEXT NOT NULL REFERENCES contacts(contact_id),
		date TEXT,
		author TEXT,
		content TEXT
	);

	CREATE TABLE IF NOT EXISTS prospects (
		prospect_id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		first_name TEXT,
		last_name TEXT,
		email TEXT,
		phone TEXT,
		title TEXT,
		status TEXT,
		source TEXT,
		created_date TEXT,
		last_contact_date TEXT,
		estimated_value INTEGER,
		probability INTEGER CHECK (probability BETWEEN 0 AND 100),
		interests TEXT,
		assigned_to TEXT,
		next_step TEXT
	);

	CREATE TABLE IF NOT EXISTS activities (
		activity_id TEXT PRIMARY KEY,
		prospect_id TEXT NOT NULL REFERENCES prospects(prospect_id) ON DELETE CASCADE,
		account_id TEXT NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		type TEXT,
		description TEXT,
		date TEXT,
		time TEXT,
		status TEXT,
		priority TEXT,
		assigned_to TEXT,
		outcome TEXT,
		notes TEXT,
		duration_minutes INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_contacts_account ON contacts(account_id);
	CREATE INDEX IF NOT EXISTS idx_notes_account ON notes(account_id);
	CREATE INDEX IF NOT EXISTS idx_prospects_account ON prospects(account_id);
	CREATE INDEX IF NOT EXISTS idx_activities_prospect ON activities(prospect_id);
	CREATE INDEX IF NOT EXISTS idx_activities_account ON activities(account_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	if err := s.recordMigration(MigrationV1, "Create CRM tables"); err != nil {
		return err
	}

	zap.L().Debug("applied migration", zap.Int("version", MigrationV1))
	return nil
}

// migrateV2 adds indexes for the common pipeline filters
func (s *Store) migrateV2() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_industry ON accounts(industry)",
		"CREATE INDEX IF NOT EXISTS idx_prospects_status ON prospects(status)",
		"CREATE INDEX IF NOT EXISTS idx_activities_status_date ON activities(status, date)",
	}

	for _, indexSQL := range indexes {
		if _, err := s.db.Exec(indexSQL); err != nil {
			return eris.Wrap(err, "failed to create index")
		}
	}

	if err := s.recordMigration(MigrationV2, "Add status and date indexes"); err != nil {
		return err
	}

	zap.L().Debug("applied migration", zap.Int("version", MigrationV2))
	return nil
}
