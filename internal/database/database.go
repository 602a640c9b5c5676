package database

import (
	"fmt"
	"time"

	"shop/internal/config"
	"shop/internal/logger"
	"shop/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database selected by cfg.DBDriver, applies the schema
// and registers the metrics callbacks. It must not be called for the memory driver.
func Open(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("driver %q has no SQL database", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := Migrate(db, cfg.DBDriver); err != nil {
		return nil, err
	}
	if err := RegisterMetricsCallbacks(db); err != nil {
		return nil, fmt.Errorf("failed to register metrics callbacks: %w", err)
	}

	logger.Info().Str("driver", cfg.DBDriver).Msg("Database connected")
	return db, nil
}

// OpenSQLite opens and migrates a SQLite database. Tests use it with
// in-memory DSNs.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	if err := Migrate(db, config.DriverSQLite); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate brings the schema up to date. Postgres uses the versioned SQL
// migrations, SQLite uses AutoMigrate over the models.
func Migrate(db *gorm.DB, driver string) error {
	if driver == config.DriverPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}
		return RunMigrations(sqlDB)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
