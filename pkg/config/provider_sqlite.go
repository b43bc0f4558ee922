package config

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/chrissnell/darkdays/pkg/migrate"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const defaultConfigName = "default"

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider opens (creating if needed) a SQLite configuration
// database and brings its schema up to date.
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	// One connection keeps per-connection pragmas in effect
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Migrations returns the configuration schema migrations compiled into the binary
func Migrations() ([]migrate.Migration, error) {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to locate embedded migrations: %w", err)
	}
	return migrate.Load(sub)
}

func migrateSchema(db *sql.DB) error {
	migrations, err := Migrations()
	if err != nil {
		return err
	}
	if _, err := migrate.NewMigrator(db, migrations, "").Up(context.Background()); err != nil {
		return fmt.Errorf("failed to migrate configuration database: %w", err)
	}
	return nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	cfg := &ConfigData{}

	var configID int64
	var listenAddr sql.NullString
	var port sql.NullInt64
	err := s.db.QueryRow(
		`SELECT id, ephemeris, server_listen_addr, server_port FROM configs WHERE name = ?`,
		defaultConfigName,
	).Scan(&configID, &cfg.Ephemeris, &listenAddr, &port)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no configuration stored in %s. Use config-convert to import one", s.dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query config: %w", err)
	}
	cfg.Server.ListenAddr = listenAddr.String
	cfg.Server.Port = int(port.Int64)

	if cfg.Location, err = s.getLocation(configID); err != nil {
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	if cfg.Calendars, err = s.getCalendars(configID); err != nil {
		return nil, fmt.Errorf("failed to load calendars: %w", err)
	}
	if cfg.Scenarios, err = s.getScenarios(configID); err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *SQLiteProvider) getLocation(configID int64) (LocationData, error) {
	var loc LocationData
	var horizon sql.NullString
	err := s.db.QueryRow(
		`SELECT name, latitude, longitude, horizon, pressure, timezone FROM locations WHERE config_id = ?`,
		configID,
	).Scan(&loc.Name, &loc.Latitude, &loc.Longitude, &horizon, &loc.Pressure, &loc.TimeZone)
	if err != nil {
		return LocationData{}, err
	}
	loc.Horizon = horizon.String
	return loc, nil
}

func (s *SQLiteProvider) getCalendars(configID int64) ([]CalendarData, error) {
	rows, err := s.db.Query(
		`SELECT id, name, start_date, end_date FROM calendars WHERE config_id = ? ORDER BY position`,
		configID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	var calendars []CalendarData
	for rows.Next() {
		var id int64
		var cd CalendarData
		if err := rows.Scan(&id, &cd.Name, &cd.Start, &cd.End); err != nil {
			return nil, fmt.Errorf("failed to scan calendar row: %w", err)
		}
		ids = append(ids, id)
		calendars = append(calendars, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		holidays, err := s.getHolidays(id)
		if err != nil {
			return nil, fmt.Errorf("calendar %q: %w", calendars[i].Name, err)
		}
		calendars[i].Holidays = holidays
	}
	return calendars, nil
}

func (s *SQLiteProvider) getHolidays(calendarID int64) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT holiday_date FROM holidays WHERE calendar_id = ? ORDER BY holiday_date`,
		calendarID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, d)
	}
	return holidays, rows.Err()
}

func (s *SQLiteProvider) getScenarios(configID int64) ([]ScenarioData, error) {
	rows, err := s.db.Query(
		`SELECT label, calendar_name, bell FROM scenarios WHERE config_id = ? ORDER BY position`,
		configID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []ScenarioData
	for rows.Next() {
		var sd ScenarioData
		if err := rows.Scan(&sd.Label, &sd.Calendar, &sd.Bell); err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		scenarios = append(scenarios, sd)
	}
	return scenarios, rows.Err()
}

// IsReadOnly returns false since SQLite supports writes
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConfig replaces the stored configuration with configData
func (s *SQLiteProvider) SaveConfig(configData *ConfigData) error {
	if err := configData.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.clearExistingConfig(tx); err != nil {
		return fmt.Errorf("failed to clear existing config: %w", err)
	}

	ephemeris := configData.Ephemeris
	if ephemeris == "" {
		ephemeris = EphemerisMeeus
	}
	result, err := tx.Exec(
		`INSERT INTO configs (name, ephemeris, server_listen_addr, server_port) VALUES (?, ?, ?, ?)`,
		defaultConfigName, ephemeris, nullString(configData.Server.ListenAddr), nullInt(configData.Server.Port),
	)
	if err != nil {
		return fmt.Errorf("failed to insert config: %w", err)
	}
	configID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	loc := configData.Location
	if _, err := tx.Exec(
		`INSERT INTO locations (config_id, name, latitude, longitude, horizon, pressure, timezone) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		configID, loc.Name, loc.Latitude, loc.Longitude, nullString(loc.Horizon), loc.Pressure, loc.TimeZone,
	); err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	for i, cd := range configData.Calendars {
		if err := s.insertCalendar(tx, configID, i, cd); err != nil {
			return fmt.Errorf("failed to insert calendar %s: %w", cd.Name, err)
		}
	}

	for i, sd := range configData.Scenarios {
		if _, err := tx.Exec(
			`INSERT INTO scenarios (config_id, label, calendar_name, bell, position) VALUES (?, ?, ?, ?, ?)`,
			configID, sd.Label, sd.Calendar, sd.Bell, i,
		); err != nil {
			return fmt.Errorf("failed to insert scenario %s: %w", sd.Label, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteProvider) clearExistingConfig(tx *sql.Tx) error {
	queries := []string{
		"DELETE FROM holidays WHERE calendar_id IN (SELECT c.id FROM calendars c JOIN configs cfg ON c.config_id = cfg.id WHERE cfg.name = ?)",
		"DELETE FROM calendars WHERE config_id IN (SELECT id FROM configs WHERE name = ?)",
		"DELETE FROM scenarios WHERE config_id IN (SELECT id FROM configs WHERE name = ?)",
		"DELETE FROM locations WHERE config_id IN (SELECT id FROM configs WHERE name = ?)",
		"DELETE FROM configs WHERE name = ?",
	}

	for _, query := range queries {
		if _, err := tx.Exec(query, defaultConfigName); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteProvider) insertCalendar(tx *sql.Tx, configID int64, position int, cd CalendarData) error {
	result, err := tx.Exec(
		`INSERT INTO calendars (config_id, name, start_date, end_date, position) VALUES (?, ?, ?, ?, ?)`,
		configID, cd.Name, cd.Start, cd.End, position,
	)
	if err != nil {
		return err
	}
	calendarID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, h := range cd.Holidays {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO holidays (calendar_id, holiday_date) VALUES (?, ?)`,
			calendarID, h,
		); err != nil {
			return fmt.Errorf("holiday %s: %w", h, err)
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}
