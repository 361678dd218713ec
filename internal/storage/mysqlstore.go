package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// MySQLStore persists snapshot records in a single key/value table so
// deployments that already run MySQL can share state across restarts.
type MySQLStore struct {
	DB *sql.DB
}

// NewMySQLStore ensures the backing table exists.
func NewMySQLStore(db *sql.DB) (*MySQLStore, error) {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS app_state (
            record_key VARCHAR(191) PRIMARY KEY,
            record_value LONGTEXT NOT NULL,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
        )`)
	if err != nil {
		return nil, fmt.Errorf("ensure app_state table: %w", err)
	}
	return &MySQLStore{DB: db}, nil
}

func (s *MySQLStore) Load(key string) ([]byte, bool, error) {
	var value string
	err := s.DB.QueryRow(`SELECT record_value FROM app_state WHERE record_key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *MySQLStore) Save(key string, data []byte) error {
	_, err := s.DB.Exec(`
        INSERT INTO app_state (record_key, record_value)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE record_value = VALUES(record_value)`,
		key, string(data))
	return err
}

func (s *MySQLStore) Delete(key string) error {
	_, err := s.DB.Exec(`DELETE FROM app_state WHERE record_key = ?`, key)
	return err
}
