package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pasture/entities"
)

// OpenSQLite opens the database at path and migrates the paddock and
// layout tables. Use ":memory:" or a temp file in tests.
func OpenSQLite(path string, verbose bool) (*gorm.DB, error) {
	mode := logger.Warn
	if verbose {
		mode = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(mode)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// one writer; sqlite serialises anyway and :memory: needs a single conn
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(
		&entities.Paddock{},
		&entities.MapLayout{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
