package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	db *gorm.DB
)

func GetDB() *gorm.DB {
	return db
}

func init() {
	// Load env from .env
	godotenv.Load()
}

// ConnectDatabase opens (or creates) the embedded database file and sets the
// global DB handle. The store is owned by a single process; there is nothing
// to wait for, so a failure to open is fatal.
func ConnectDatabase() {
	dbPath := os.Getenv("POS_DB_PATH")
	if dbPath == "" {
		dbPath = "pos.db"
	}

	var err error
	db, err = gorm.Open(sqlite.Open(dbPath), initConfig())
	if err != nil {
		log.Fatalf("failed to open database %s: %v", dbPath, err)
	}

	// Single writer: one connection avoids SQLITE_BUSY between a settlement
	// transaction and report reads fired right after commit.
	if sqlDB, derr := db.DB(); derr == nil && sqlDB != nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxIdleTime(time.Minute)
	}
}

// InitConfig Initialize Config
func initConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         initLog(),
		NamingStrategy: initNamingStrategy(),
	}
}

// InitLog Connection Log Configuration
func initLog() logger.Interface {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			Colorful:      false,
			LogLevel:      logger.Error,
			SlowThreshold: time.Second,
		},
	)
	return newLogger
}

// InitNamingStrategy Init NamingStrategy
func initNamingStrategy() *schema.NamingStrategy {
	return &schema.NamingStrategy{
		SingularTable: false,
		TablePrefix:   "",
	}
}
