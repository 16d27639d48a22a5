package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteHolidayCacheRepo implements HolidayCacheRepo using a SQLite database.
type SQLiteHolidayCacheRepo struct {
	db *sql.DB
}

// NewSQLiteHolidayCacheRepo creates a new SQLiteHolidayCacheRepo.
func NewSQLiteHolidayCacheRepo(db *sql.DB) *SQLiteHolidayCacheRepo {
	return &SQLiteHolidayCacheRepo{db: db}
}

// Get returns the cached payload for year, or nil when absent.
func (r *SQLiteHolidayCacheRepo) Get(ctx context.Context, year int) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM holiday_cache WHERE year = ?`, year,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading holiday cache for %d: %w", year, err)
	}
	return payload, nil
}

func (r *SQLiteHolidayCacheRepo) Put(ctx context.Context, year int, payload []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO holiday_cache (year, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(year) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		year, payload, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("writing holiday cache for %d: %w", year, err)
	}
	return nil
}
