package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database served by driver using dsn.
func Open(driver, dsn string) (*GormDB, error) {
	switch driver {
	case DriverPostgres:
		return NewGormDB(postgres.Open(dsn))
	case DriverSQLite:
		gdb, err := NewGormDB(sqlite.Open(dsn))
		if err != nil {
			return nil, err
		}

		sqlDB, err := gdb.db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db conn: %w", err)
		}
		// sqlite allows a single writer, and an in-memory database lives
		// only as long as its connection
		sqlDB.SetMaxOpenConns(1)

		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
