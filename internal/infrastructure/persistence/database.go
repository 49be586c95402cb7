package persistence

import (
	"fmt"
	"time"

	"github.com/retrorevival/storefront/internal/infrastructure/config"
	"github.com/retrorevival/storefront/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the database connection for the persisted cart store
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a database connection for the configured backend
// (sqlite file or postgres) with a silent logger.
func NewDatabase(cfg *config.StoreConfig) (*Database, error) {
	return NewDatabaseWithLogger(cfg, gormlogger.Default.LogMode(gormlogger.Silent))
}

// NewDatabaseWithLogger creates a database connection with a custom
// GORM logger (e.g. the zap adapter).
func NewDatabaseWithLogger(cfg *config.StoreConfig, gormLog gormlogger.Interface) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Backend {
	case config.StoreBackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.StoreBackendPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLog,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Backend == config.StoreBackendPostgres {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates the cart store schema. Used by the sqlite
// backend; postgres deployments run cmd/migrate instead.
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(&models.CartRecord{})
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
