package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"regexp"

	"github.com/go-sql-driver/mysql"

	"beeftest/internal/config"
	"beeftest/internal/domain"
)

// Table names used by MySQLStorage
const (
	RunsTable     = "beeftest_runs"
	FailuresTable = "beeftest_failures"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + RunsTable + ` (
		run_id CHAR(36) NOT NULL PRIMARY KEY,
		started_at VARCHAR(40) NOT NULL,
		executed INT NOT NULL,
		passed INT NOT NULL,
		failed INT NOT NULL,
		duration VARCHAR(64) NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	)`,
	`CREATE TABLE IF NOT EXISTS ` + FailuresTable + ` (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		run_id CHAR(36) NOT NULL,
		position INT NOT NULL,
		test_name VARCHAR(512) NOT NULL,
		file VARCHAR(1024) NOT NULL,
		line INT NOT NULL,
		assertions TEXT NOT NULL,
		resolved BOOLEAN NOT NULL DEFAULT FALSE,
		INDEX (run_id)
	)`,
}

var validDatabaseName = regexp.MustCompile(`^[A-Za-z0-9_$]{1,64}$`)

// ErrNoRuns is returned by Load when nothing was saved yet
var ErrNoRuns = errors.New("no saved runs")

// MySQLStorage keeps saved runs in a MySQL database
type MySQLStorage struct {
	cfg *config.Config
}

// NewMySQLStorage creates a MySQLStorage using the config's database settings
func NewMySQLStorage(cfg *config.Config) *MySQLStorage {
	return &MySQLStorage{cfg: cfg}
}

// DSN returns the data source name to connect with. An explicit DSN wins over
// the individual connection settings.
func (s *MySQLStorage) DSN() (string, error) {
	db := s.cfg.Database
	if db.DSN != "" {
		return db.DSN, nil
	}
	if !validDatabaseName.MatchString(db.Name) {
		return "", fmt.Errorf("invalid database name: %q", db.Name)
	}

	port := db.Port
	if port == "" {
		port = config.DefaultDatabasePort
	}

	mc := mysql.NewConfig()
	mc.User = db.User
	mc.Passwd = db.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(db.Host, port)
	mc.DBName = db.Name
	return mc.FormatDSN(), nil
}

func (s *MySQLStorage) open() (*sql.DB, error) {
	dsn, err := s.DSN()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return db, nil
}

// Save stores the run. Saving a run again replaces its failures, which is
// how resolved flags are updated.
func (s *MySQLStorage) Save(run *domain.RunRecord) (err error) {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	m := run.Meta
	_, err = tx.Exec(`INSERT INTO `+RunsTable+`
		(run_id, started_at, executed, passed, failed, duration, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE executed = VALUES(executed), passed = VALUES(passed),
			failed = VALUES(failed), duration = VALUES(duration), duration_seconds = VALUES(duration_seconds)`,
		m.RunID, m.Timestamp, m.Executed, m.Passed, m.Failed, m.Duration, m.DurationSeconds)
	if err != nil {
		return fmt.Errorf("save run %s: %w", m.RunID, err)
	}

	if _, err = tx.Exec(`DELETE FROM `+FailuresTable+` WHERE run_id = ?`, m.RunID); err != nil {
		return fmt.Errorf("clear failures of run %s: %w", m.RunID, err)
	}

	for i, f := range run.Details {
		assertions, merr := json.Marshal(f.Failed)
		if merr != nil {
			return fmt.Errorf("marshal assertions of %q: %w", f.TestName, merr)
		}
		_, err = tx.Exec(`INSERT INTO `+FailuresTable+`
			(run_id, position, test_name, file, line, assertions, resolved)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			m.RunID, i, f.TestName, f.File, f.Line, string(assertions), f.Resolved)
		if err != nil {
			return fmt.Errorf("save failure %q: %w", f.TestName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", m.RunID, err)
	}
	slog.Debug("Run saved to database.", "run_id", m.RunID, "failures", len(run.Details))
	return nil
}

// Load returns the most recently created run
func (s *MySQLStorage) Load() (*domain.RunRecord, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var run domain.RunRecord
	m := &run.Meta
	err = db.QueryRow(`SELECT run_id, started_at, executed, passed, failed, duration, duration_seconds
		FROM `+RunsTable+` ORDER BY created_at DESC LIMIT 1`).
		Scan(&m.RunID, &m.Timestamp, &m.Executed, &m.Passed, &m.Failed, &m.Duration, &m.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("load last run: %w", err)
	}

	rows, err := db.Query(`SELECT test_name, file, line, assertions, resolved
		FROM `+FailuresTable+` WHERE run_id = ? ORDER BY position`, m.RunID)
	if err != nil {
		return nil, fmt.Errorf("load failures of run %s: %w", m.RunID, err)
	}
	defer rows.Close()

	run.Details = []domain.TestFailure{}
	for rows.Next() {
		var f domain.TestFailure
		var assertions string
		if err := rows.Scan(&f.TestName, &f.File, &f.Line, &assertions, &f.Resolved); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		if err := json.Unmarshal([]byte(assertions), &f.Failed); err != nil {
			return nil, fmt.Errorf("parse assertions of %q: %w", f.TestName, err)
		}
		run.Details = append(run.Details, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read failures of run %s: %w", m.RunID, err)
	}
	return &run, nil
}
