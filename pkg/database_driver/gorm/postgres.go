package gorm

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotConfigured is returned when no database host is configured.
var ErrNotConfigured = errors.New("postgres is not configured")

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(host, port, username, pass, dbname string, sslmode bool) (*DB, error) {
	if host == "" {
		return nil, ErrNotConfigured
	}
	if port == "" {
		port = "5432"
	}

	mode := "disable"
	if sslmode {
		mode = "require"
	}
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=10", host, username, pass, dbname, port, mode)

	pg, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	sqlDB, err := pg.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.Infof("Connected to postgres %s:%s/%s", host, port, dbname)
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err = sqlDb.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}
