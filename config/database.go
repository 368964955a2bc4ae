package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the configured database. DB_DRIVER selects the dialect
// (postgres by default, sqlite for local development); DB_URL carries the
// DSN or the sqlite file path.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
