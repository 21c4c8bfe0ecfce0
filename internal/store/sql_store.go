package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/chat262/cluster/internal/statemachine"
)

// SQLStore is an opt-in durable backend over database/sql, selected at
// startup via a "postgres://" or "mysql://" DSN. It exists to exercise the
// relational drivers kept from the teacher's dependency graph; the default
// CLI path uses BoltStore instead, and no §8 scenario requires this
// backend. Both drivers store the same chatpb.ReplicaStateBlob-encoded
// bytes in a single row, so the contract and the on-disk format are
// identical to BoltStore's — only the durability mechanism (a SQL
// transaction instead of a bbolt commit) differs.
type SQLStore struct {
	db        *sql.DB
	driver    string
	replicaID int
}

// OpenSQLStore opens a SQL-backed store for the given replica id. dsn's
// scheme picks the driver: "postgres://..." uses lib/pq, "mysql://..."
// (stripped of the scheme, since the mysql driver takes a bare DSN) uses
// go-sql-driver/mysql.
func OpenSQLStore(dsn string, replicaID int) (*SQLStore, error) {
	driver, dataSource, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dataSource)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	createStmt := `CREATE TABLE IF NOT EXISTS chat262_replica_state (
		replica_id INTEGER PRIMARY KEY,
		state_blob BYTEA
	)`
	if driver == "mysql" {
		createStmt = `CREATE TABLE IF NOT EXISTS chat262_replica_state (
			replica_id INTEGER PRIMARY KEY,
			state_blob BLOB
		)`
	}
	if _, err := db.Exec(createStmt); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLStore{db: db, driver: driver, replicaID: replicaID}, nil
}

func parseDSN(dsn string) (driver, dataSource string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn, nil
	case strings.HasPrefix(dsn, "mysql://"):
		return "mysql", strings.TrimPrefix(dsn, "mysql://"), nil
	default:
		return "", "", fmt.Errorf("store: unrecognized DSN scheme in %q (want postgres:// or mysql://)", dsn)
	}
}

// placeholder returns the n-th bind parameter in the dialect of s.driver:
// lib/pq wants "$1, $2, ..."; go-sql-driver/mysql wants "?" for every slot.
func (s *SQLStore) placeholder(n int) string {
	if s.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Load returns the persisted ReplicaState for this replica, or a fresh
// empty one if no row exists yet.
func (s *SQLStore) Load() (statemachine.ReplicaState, error) {
	var data []byte
	query := fmt.Sprintf(`SELECT state_blob FROM chat262_replica_state WHERE replica_id = %s`, s.placeholder(1))
	row := s.db.QueryRow(query, s.replicaID)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return statemachine.NewReplicaState(), nil
		}
		return statemachine.ReplicaState{}, err
	}
	return decode(data)
}

// Store atomically replaces the persisted ReplicaState inside one SQL
// transaction, matching the bbolt backend's single-commit contract.
func (s *SQLStore) Store(state statemachine.ReplicaState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	deleteQuery := fmt.Sprintf(`DELETE FROM chat262_replica_state WHERE replica_id = %s`, s.placeholder(1))
	if _, err := tx.Exec(deleteQuery, s.replicaID); err != nil {
		tx.Rollback()
		return err
	}
	insertQuery := fmt.Sprintf(`INSERT INTO chat262_replica_state (replica_id, state_blob) VALUES (%s, %s)`,
		s.placeholder(1), s.placeholder(2))
	if _, err := tx.Exec(insertQuery, s.replicaID, data); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
