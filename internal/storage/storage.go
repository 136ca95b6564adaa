// Package storage implements the relational persistence layer for CargoTrack
// on top of gorm. Production deployments run against PostgreSQL; development
// and tests use the SQLite driver with the same models. Every multi-row
// workflow runs inside a single transaction so a failure never leaves an
// orphaned shipment or order row behind.
package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cargotrack/cargotrack/internal/config"
	"github.com/cargotrack/cargotrack/models"
)

// ErrNotFound is returned when a referenced row does not exist. Callers
// translate it to a 404; wrapped messages name the missing resource.
var ErrNotFound = errors.New("record not found")

// Storage wraps the database handle shared by all repositories.
type Storage struct {
	db *gorm.DB
}

// New opens the configured database, sizes the connection pool, and runs
// the schema migration.
func New(cfg *config.Config) (*Storage, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Storage.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
	}

	logLevel := logger.Silent
	if cfg.Server.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Storage.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Storage.ConnMaxLifetime)

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return s, nil
}

func (s *Storage) migrate() error {
	return s.db.AutoMigrate(
		&models.Location{},
		&models.ContainerMetaData{},
		&models.Container{},
		&models.Product{},
		&models.Client{},
		&models.Shipment{},
		&models.ClientOrder{},
		&models.Maintenance{},
		&models.ReportFile{},
	)
}

// Ping verifies the database connection is alive.
func (s *Storage) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the connection pool.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Info summarizes row counts per entity for the health endpoint.
type Info struct {
	Containers int64 `json:"containers"`
	Shipments  int64 `json:"shipments"`
	Orders     int64 `json:"orders"`
}

// GetInfo returns entity counts, doubling as a connectivity check.
func (s *Storage) GetInfo() (*Info, error) {
	var info Info
	if err := s.db.Model(&models.Container{}).Count(&info.Containers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Shipment{}).Count(&info.Shipments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ClientOrder{}).Count(&info.Orders).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// notFound wraps ErrNotFound with the resource kind and id.
func notFound(resource string, id interface{}) error {
	return fmt.Errorf("%s %v: %w", resource, id, ErrNotFound)
}
