package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS party_records (
	profile        TEXT    NOT NULL,
	name           TEXT    NOT NULL,
	definition_key TEXT    NOT NULL,
	slot           INTEGER NOT NULL,
	level          INTEGER NOT NULL,
	experience     INTEGER NOT NULL,
	current_hp     INTEGER NOT NULL,
	max_hp         INTEGER NOT NULL,
	attack         INTEGER NOT NULL,
	defense        INTEGER NOT NULL,
	speed          INTEGER NOT NULL,
	moves          TEXT    NOT NULL,
	updated_at     INTEGER NOT NULL,
	PRIMARY KEY (profile, name)
)`

const selectColumns = `name, definition_key, slot, level, experience, current_hp, max_hp,
	attack, defense, speed, moves, updated_at`

// SQLiteRepository persists records in a local SQLite file
type SQLiteRepository struct {
	db           *sql.DB
	profile      string
	timeProvider TimeProvider
}

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	Path         string
	Profile      string
	TimeProvider TimeProvider
}

// OpenSQLite opens (creating if needed) the save file at cfg.Path
func OpenSQLite(ctx context.Context, cfg *SQLiteRepoConfig) (*SQLiteRepository, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, dnderr.Configurationf("sqlite path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, dnderr.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, dnderr.Wrap(err, "failed to create party_records table")
	}

	profile := cfg.Profile
	if profile == "" {
		profile = DefaultProfile
	}
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = SystemTime()
	}

	return &SQLiteRepository{
		db:           db,
		profile:      profile,
		timeProvider: timeProvider,
	}, nil
}

// Close closes the SQLite handle
func (s *SQLiteRepository) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts the record
func (s *SQLiteRepository) Save(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	moves, err := json.Marshal(nonNil(record.Moves))
	if err != nil {
		return dnderr.Wrapf(err, "failed to marshal moves for '%s'", record.Name)
	}
	updatedAt := s.timeProvider.Now()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO party_records (
		   profile, name, definition_key, slot, level, experience,
		   current_hp, max_hp, attack, defense, speed, moves, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(profile, name) DO UPDATE SET
		   definition_key = excluded.definition_key,
		   slot = excluded.slot,
		   level = excluded.level,
		   experience = excluded.experience,
		   current_hp = excluded.current_hp,
		   max_hp = excluded.max_hp,
		   attack = excluded.attack,
		   defense = excluded.defense,
		   speed = excluded.speed,
		   moves = excluded.moves,
		   updated_at = excluded.updated_at`,
		s.profile, record.Name, record.DefinitionKey, record.Slot, record.Level, record.Experience,
		record.CurrentHP, record.MaxHP, record.Attack, record.Defense, record.Speed,
		string(moves), updatedAt.UnixMilli(),
	)
	if err != nil {
		return dnderr.Wrapf(err, "failed to save record '%s'", record.Name)
	}

	record.UpdatedAt = time.UnixMilli(updatedAt.UnixMilli()).UTC()
	return nil
}

// Get retrieves a record by name
func (s *SQLiteRepository) Get(ctx context.Context, name string) (*Record, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("record name is required")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM party_records WHERE profile = ? AND name = ?`,
		s.profile, name,
	)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(name)
		}
		return nil, dnderr.Wrapf(err, "failed to get record '%s'", name)
	}

	return record, nil
}

// LoadAll returns every record in the profile ordered by slot
func (s *SQLiteRepository) LoadAll(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM party_records WHERE profile = ? ORDER BY slot, name`,
		s.profile,
	)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list records for profile '%s'", s.profile)
	}
	defer rows.Close()

	var result []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to scan record")
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.Wrap(err, "failed to iterate records")
	}

	return result, nil
}

// Delete removes a record
func (s *SQLiteRepository) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("record name is required")
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM party_records WHERE profile = ? AND name = ?`,
		s.profile, name,
	)
	if err != nil {
		return dnderr.Wrapf(err, "failed to delete record '%s'", name)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return dnderr.Wrapf(err, "failed to delete record '%s'", name)
	}
	if affected == 0 {
		return notFound(name)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		record    Record
		moves     string
		updatedAt int64
	)
	err := row.Scan(
		&record.Name, &record.DefinitionKey, &record.Slot, &record.Level, &record.Experience,
		&record.CurrentHP, &record.MaxHP, &record.Attack, &record.Defense, &record.Speed,
		&moves, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(moves), &record.Moves); err != nil {
		return nil, err
	}
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &record, nil
}

func nonNil(moves []string) []string {
	if moves == nil {
		return []string{}
	}
	return moves
}
