package repository

import (
	"testing"

	"Klutterbox/database"
	"Klutterbox/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory database with the full schema, search
// index included. A single connection keeps the memory database alive.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestBoxRepository_CreateAndFindByCode(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	box := &models.Box{Code: "attic1", Label: strPtr("Attic")}
	err := boxRepo.Create(box)

	assert.NoError(t, err)
	assert.NotZero(t, box.ID)

	found, err := boxRepo.FindByCode("attic1")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, box.ID, found.ID)
	assert.Equal(t, "Attic", *found.Label)
}

func TestBoxRepository_FindByCode_Missing(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	found, err := boxRepo.FindByCode("nope")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestBoxRepository_Create_DuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	assert.NoError(t, boxRepo.Create(&models.Box{Code: "attic1"}))
	err := boxRepo.Create(&models.Box{Code: "attic1"})
	assert.Error(t, err)
}

func TestBoxRepository_FindAllOrdered(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	assert.NoError(t, boxRepo.Create(&models.Box{Code: "zz"}))
	assert.NoError(t, boxRepo.Create(&models.Box{Code: "aa"}))

	boxes, err := boxRepo.FindAllOrdered()
	assert.NoError(t, err)
	// box1 is seeded by the migration.
	assert.Len(t, boxes, 3)
	assert.Equal(t, "aa", boxes[0].Code)
	assert.Equal(t, "box1", boxes[1].Code)
	assert.Equal(t, "zz", boxes[2].Code)
}

func TestBoxRepository_Summaries(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)
	itemRepo := NewItemRepository(db)

	assert.NoError(t, boxRepo.Create(&models.Box{Code: "attic1"}))
	assert.NoError(t, itemRepo.Create(&models.Item{Name: "Lamp", BoxCode: "attic1"}))
	assert.NoError(t, itemRepo.Create(&models.Item{Name: "Chair", BoxCode: "attic1"}))

	summaries, err := boxRepo.Summaries()
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "attic1", summaries[0].Code)
	assert.Equal(t, int64(2), summaries[0].ItemCount)
	assert.Equal(t, "box1", summaries[1].Code)
	assert.Equal(t, int64(0), summaries[1].ItemCount)
}

func TestBoxRepository_CountItems(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)
	itemRepo := NewItemRepository(db)

	assert.NoError(t, boxRepo.Create(&models.Box{Code: "attic1"}))
	assert.NoError(t, itemRepo.Create(&models.Item{Name: "Lamp", BoxCode: "attic1"}))

	count, err := boxRepo.CountItems("attic1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = boxRepo.CountItems("box1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestBoxRepository_RenameCode_Cascades(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)
	itemRepo := NewItemRepository(db)

	assert.NoError(t, boxRepo.Create(&models.Box{Code: "attic1"}))
	assert.NoError(t, itemRepo.Create(&models.Item{Name: "Winter Boots", BoxCode: "attic1"}))

	assert.NoError(t, boxRepo.RenameCode("attic1", "attic2"))

	old, err := boxRepo.FindByCode("attic1")
	assert.NoError(t, err)
	assert.Nil(t, old)

	renamed, err := boxRepo.FindByCode("attic2")
	assert.NoError(t, err)
	assert.NotNil(t, renamed)

	// Items follow the new code.
	items, err := itemRepo.List("attic2", 10, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Winter Boots", items[0].Name)

	// And so do their index entries: a filtered prefix search under the
	// new code still matches.
	results, err := itemRepo.SearchMatch(`"wint"*`, "attic2", 200)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
}
