package db

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type txKey struct{}

type GormDB struct {
	db *gorm.DB
}

func NewGormDB(dialector gorm.Dialector) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// conn returns the transaction carried by ctx, if any, so that every call made
// inside Transaction joins it.
func (f *GormDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return f.db.WithContext(ctx)
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.conn(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, conditions map[string]any, dest any) error {
	err := f.conn(ctx).Where(conditions).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", columns(conditions), err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, conditions map[string]any, dest any, preloads ...string) error {
	tx := withPreloads(f.conn(ctx), preloads).Where(conditions).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %v: %w", columns(conditions), tx.Error)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, dest any, preloads ...string) error {
	tx := withPreloads(f.conn(ctx), preloads).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// UpdateBy sets values on every row of model matching conditions and reports
// how many rows matched.
func (f *GormDB) UpdateBy(ctx context.Context, model any, conditions map[string]any, values map[string]any) (int64, error) {
	tx := f.conn(ctx).Model(model).Where(conditions).Updates(values)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records by %v: %w", columns(conditions), tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *GormDB) DeleteBy(ctx context.Context, model any, conditions map[string]any) (int64, error) {
	tx := f.conn(ctx).Where(conditions).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %v: %w", columns(conditions), tx.Error)
	}
	return tx.RowsAffected, nil
}

// Upsert inserts record or, when a row with the same conflictColumns exists,
// overwrites its updateColumns in the same statement.
func (f *GormDB) Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error {
	conflict := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		conflict = append(conflict, clause.Column{Name: c})
	}

	err := f.conn(ctx).Clauses(clause.OnConflict{
		Columns:   conflict,
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

// Transaction runs fn inside a database transaction. The context handed to fn
// carries the transaction; it is committed when fn returns nil and rolled back
// otherwise.
func (f *GormDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func withPreloads(tx *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func columns(conditions map[string]any) []string {
	return slices.Sorted(maps.Keys(conditions))
}
