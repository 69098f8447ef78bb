package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cablepay-be-svc/internal/config"
	"cablepay-be-svc/internal/models"
)

// Database wraps the gorm connection shared by every repository
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection using the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := Open(postgres.Open(cfg.GetDSN()))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Open opens a gorm connection on any dialector. Driver errors are translated so that
// unique violations surface as gorm.ErrDuplicatedKey regardless of the engine.
func Open(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the schema
func (d *Database) AutoMigrate() error {
	if err := d.DB.AutoMigrate(
		&models.Home{},
		&models.Payment{},
		&models.User{},
		&models.SchedulerLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// SQLite cannot add constraints to an existing table; homes deletion removes payments explicitly anyway.
	if d.DB.Dialector.Name() == "postgres" {
		migrator := d.DB.Migrator()
		if !migrator.HasConstraint(&models.Home{}, "Payments") {
			if err := migrator.CreateConstraint(&models.Home{}, "Payments"); err != nil {
				return fmt.Errorf("failed to create payments foreign key: %w", err)
			}
		}
	}

	return nil
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
