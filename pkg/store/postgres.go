package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-service/pkg/config"
	"pos-service/prometheus"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StateSlot is the single-table layout for persisted collections: one row
// per named slot, value replaced wholesale on every save.
type StateSlot struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// Postgres persists slots in a Postgres table via GORM.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres opens the database connection, applies pool settings and
// runs the migration for the slot table.
func NewPostgres(cfg *config.Config) (*Postgres, error) {
	logLevel := logger.Error
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	pgConfig := postgres.Config{
		DSN:                  cfg.Store.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database object: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.Store.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Store.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Store.ConnMaxLifetime)

	if err := db.AutoMigrate(&StateSlot{}); err != nil {
		return nil, fmt.Errorf("run database migrations: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Load implements Adapter.
func (p *Postgres) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var slot StateSlot
	err := p.db.WithContext(ctx).First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return slot.Value, true, nil
}

// Save implements Adapter. The slot row is upserted so first and repeat
// saves take the same path.
func (p *Postgres) Save(ctx context.Context, key string, value []byte) error {
	defer prometheus.TrackStoreSave(key)(time.Now())
	slot := StateSlot{Key: key, Value: value, UpdatedAt: time.Now()}
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}
