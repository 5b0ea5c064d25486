package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens the database configured by DB_DRIVER/DB_URL and installs
// the shared handle. Sqlite is supported for development and testing.
func ConnectDB() error {
	driver := viper.GetString("DB_DRIVER")
	dsn := viper.GetString("DB_URL")

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = "movesched.db"
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(viper.GetInt("DB_MAX_OPEN_CONNS"))
	sqlDB.SetMaxIdleConns(viper.GetInt("DB_MAX_IDLE_CONNS"))

	DB = db
	return nil
}
