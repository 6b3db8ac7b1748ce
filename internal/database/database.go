package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zachkp/portfolio/internal/models"

	// registers the pure-Go "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// Options controls how the database is opened.
type Options struct {
	// URI is a SQLAlchemy-style URI ("sqlite:///portfolio.db"), a bare file
	// path, or a postgres:// connection string.
	URI string
	// TraceSQL logs every statement.
	TraceSQL bool
}

// Open connects to the database named by opts.URI.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.URI)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if opts.TraceSQL {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger(slog.Default(), level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	if db.Dialector.Name() == "sqlite" {
		// one writer at a time avoids SQLITE_BUSY under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(uri string) (gorm.Dialector, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return nil, fmt.Errorf("database URI is not configured")
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return postgres.Open(uri), nil
	case strings.HasPrefix(uri, "sqlite://"):
		return sqliteDialector(strings.TrimPrefix(uri, "sqlite://"))
	case strings.Contains(uri, "://"):
		return nil, fmt.Errorf("unsupported database URI scheme: %s", uri)
	default:
		return sqliteDialector("/" + uri)
	}
}

// sqliteDialector takes the part after "sqlite://"; SQLAlchemy writes relative
// paths as sqlite:///rel.db and absolute ones as sqlite:////abs.db.
func sqliteDialector(rest string) (gorm.Dialector, error) {
	path := strings.TrimPrefix(rest, "/")
	if path == "" || path == ":memory:" {
		return nil, fmt.Errorf("sqlite database path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	return &sqlite.Dialector{DriverName: "sqlite", DSN: dsn}, nil
}
