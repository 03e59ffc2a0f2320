package db

import (
	"database/sql"

	_ "github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate ensures the tasks table exists.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS tasks (
            id                SERIAL PRIMARY KEY,
            task              TEXT NOT NULL,
            time_phrase       TEXT NOT NULL,
            scheduled_at      TIMESTAMPTZ NOT NULL,
            phone             TEXT,
            email             TEXT,
            notification_sent BOOLEAN NOT NULL DEFAULT FALSE,
            completed         BOOLEAN NOT NULL DEFAULT FALSE,
            created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
        )`)
	return err
}
