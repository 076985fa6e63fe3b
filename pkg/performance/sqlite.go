package performance

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteDAO stores records in a SQLite database file.
type SQLiteDAO struct {
	db *sql.DB
}

func NewSQLiteDAO(dbPath string) (*SQLiteDAO, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteDAO{db: db}, nil
}

func RunMigrations(dbPath string) error {
	// separate connection, m.Close closes it
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteDAO) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteDAO) PerformanceByMonth(ctx context.Context, yearMonth string) (float32, error) {
	var sum float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(performance), 0) FROM performance WHERE year_month = ?`,
		yearMonth,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum performance for %s: %w", yearMonth, err)
	}
	return float32(sum), nil
}

func (s *SQLiteDAO) CountPerformanceByMonth(ctx context.Context, yearMonth string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM performance WHERE year_month = ? AND performance > 0`,
		yearMonth,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count performance for %s: %w", yearMonth, err)
	}
	return count, nil
}

func (s *SQLiteDAO) Insert(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO performance (id, performance, year_month) VALUES (?, ?, ?)`,
		r.ID, r.Performance, r.YearMonth,
	)
	if err != nil {
		return fmt.Errorf("insert performance %s: %w", r.ID, err)
	}
	return nil
}
