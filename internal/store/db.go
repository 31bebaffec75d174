package store

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSqliteStore opens the local state database holding the staged
// checkout snapshot, the cart cache and the badge counter.
func InitSqliteStore(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open state store:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&StagedCheckout{},
		&CartEntry{},
		&CartCounter{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
