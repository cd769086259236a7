package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

func (p *PostgresDB) MigrateModels(models ...any) error {
	err := p.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts the given records only when their table is still empty.
func (p *PostgresDB) Seed(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	elemType := slice.Index(0).Interface()
	var count int64
	if err := p.db.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := p.db.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// Insert creates a single record. A unique index violation maps to ErrDuplicateKey.
func (p *PostgresDB) Insert(ctx context.Context, record any) error {
	err := p.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) GetOneWhere(ctx context.Context, conds map[string]any, entity any) error {
	err := p.db.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetAllWhere(ctx context.Context, conds map[string]any, order string, entities any) error {
	tx := p.db.WithContext(ctx)
	if len(conds) > 0 {
		tx = tx.Where(conds)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records: %w", err)
	}
	return nil
}

// UpdateWhere applies updates to every row matching conds and reports how many
// rows changed. Callers use the count to detect a lost conditional update.
func (p *PostgresDB) UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error) {
	tx := p.db.WithContext(ctx).Model(model).Where(conds).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
