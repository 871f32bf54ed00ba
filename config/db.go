package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-orders/models"
)

// Open connects to the configured store. The caller owns the handle and
// must release it with Close.
func Open(cfg *Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		if err := singleConn(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// singleConn caps the pool at one connection, which keeps in-memory
// databases alive and serializes writers. The handle is closed on failure.
func singleConn(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		_ = Close(db)
		return fmt.Errorf("configure sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

// Migrate creates or updates every table, parents before children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		// pools gorm cannot unwrap are closed directly
		if closer, ok := db.ConnPool.(io.Closer); ok {
			return closer.Close()
		}
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg *Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
