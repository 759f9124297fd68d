package database

import (
	"fmt"
	"os"
	"path/filepath"

	"Klutterbox/internal/config"
	"Klutterbox/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const databaseFileName = "klutterbox.db"

// ftsSchema is the full-text index over items. It is a plain FTS5 table
// keyed by rowid = item id and is maintained by the item repository inside
// the same transaction as each item write, never by triggers.
const ftsSchema = `
CREATE VIRTUAL TABLE IF NOT EXISTS items_fts USING fts5(
    name,
    description,
    box_code,
    tokenize='porter'
);`

// ftsBackfill indexes any items rows missing from the index, e.g. rows
// written by an older build of the service.
const ftsBackfill = `
INSERT INTO items_fts(rowid, name, description, box_code)
SELECT id, name, coalesce(description, ''), box_code
FROM items
WHERE id NOT IN (SELECT rowid FROM items_fts);`

func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	for _, dir := range []string{cfg.Storage.DataPath, cfg.Storage.UploadsPath, cfg.Storage.PublicPath} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL", filepath.Join(cfg.Storage.DataPath, databaseFileName))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the relational tables, the search index and the default
// box. It is safe to run on every startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Box{}, &models.Item{}); err != nil {
		return err
	}
	if err := db.Exec(ftsSchema).Error; err != nil {
		return err
	}
	if err := db.Exec(ftsBackfill).Error; err != nil {
		return err
	}
	label := models.DefaultBoxLabel
	defaultBox := models.Box{Code: models.DefaultBoxCode, Label: &label}
	return db.Where(models.Box{Code: models.DefaultBoxCode}).FirstOrCreate(&defaultBox).Error
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
