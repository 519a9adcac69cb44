package kv

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/teampath/learnhub-backend/internal/logger"
)

// Record is the single table the Gorm store keeps: one row per key.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (Record) TableName() string {
	return "kv_record"
}

// Gorm is a sqlite-backed Store. One table, one row per key, the value held
// as the serialized collection, keeping the key-value contract intact while
// giving deployments a real embedded database file.
type Gorm struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGorm(path string, log *logger.Logger) (*Gorm, error) {
	storeLog := log.With("store", "GormKV")

	storeLog.Info("Opening sqlite database...", "path", path)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		storeLog.Error("Failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		storeLog.Error("Auto migration failed", "error", err)
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}
	return &Gorm{db: db, log: storeLog}, nil
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec Record
	err := g.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (g *Gorm) Put(ctx context.Context, key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, UpdateAll: true}).
		Create(&rec).Error
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
