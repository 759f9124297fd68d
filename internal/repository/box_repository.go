package repository

import (
	"errors"

	"Klutterbox/internal/dto"
	"Klutterbox/internal/models"
	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindByCode(code string) (*models.Box, error)
	FindAllOrdered() ([]models.Box, error)
	Summaries() ([]dto.BoxSummaryDTO, error)
	CountItems(code string) (int64, error)
	RenameCode(oldCode, newCode string) error
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) FindByCode(code string) (*models.Box, error) {
	var box models.Box
	err := r.db.Where("code = ?", code).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl[T]) FindAllOrdered() ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Order("code ASC").Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) Summaries() ([]dto.BoxSummaryDTO, error) {
	var rows []dto.BoxSummaryDTO
	err := r.db.Raw(`
		SELECT b.id, b.code, b.label, COUNT(i.id) AS item_count
		FROM boxes b
		LEFT JOIN items i ON i.box_code = b.code
		GROUP BY b.id, b.code, b.label
		ORDER BY b.code ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BoxRepositoryImpl[T]) CountItems(code string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Where("box_code = ?", code).Count(&count).Error
	return count, err
}

// RenameCode changes a box code and cascades the rename to every item and
// index entry referencing it, all inside one transaction.
func (r *BoxRepositoryImpl[T]) RenameCode(oldCode, newCode string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Box{}).Where("code = ?", oldCode).
			Update("code", newCode).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Item{}).Where("box_code = ?", oldCode).
			Update("box_code", newCode).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE items_fts SET box_code = ?
			WHERE rowid IN (SELECT id FROM items WHERE box_code = ?)`,
			newCode, newCode).Error
	})
}
