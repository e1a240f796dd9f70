package app

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB opens a MySQL connection using sensible defaults.
func NewDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}

// DBMessageSource reads the banner message from the site_messages table.
//
//	CREATE TABLE site_messages (
//	  id INT AUTO_INCREMENT PRIMARY KEY,
//	  body TEXT NOT NULL,
//	  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
type DBMessageSource struct {
	db *sql.DB
}

// NewDBMessageSource returns a MessageSource backed by db.
func NewDBMessageSource(db *sql.DB) *DBMessageSource {
	return &DBMessageSource{db: db}
}

// Message returns the most recently created message, or "" when the table is empty.
func (s *DBMessageSource) Message(ctx context.Context) (string, error) {
	const query = `SELECT body FROM site_messages ORDER BY created_at DESC, id DESC LIMIT 1`
	row := s.db.QueryRowContext(ctx, query)
	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return body, nil
}
