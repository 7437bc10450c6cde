package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

func Init(connURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
