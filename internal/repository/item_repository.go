package repository

import (
	"errors"
	"strings"

	"Klutterbox/internal/models"
	"gorm.io/gorm"
)

// ItemRepository deliberately does not embed GenericRepository: every item
// write must also touch the items_fts row, so the plain gorm mutations
// would let the index drift.
type ItemRepository interface {
	Create(item *models.Item) error
	CreateBatch(items []*models.Item) error
	FindByID(id uint) (*models.Item, error)
	Update(item *models.Item) error
	Delete(item *models.Item) error
	List(boxCode string, limit, offset int) ([]models.Item, error)
	SearchMatch(matchExpr, boxCode string, limit int) ([]models.Item, error)
	SearchLike(tokens []string, boxCode string, limit int) ([]models.Item, error)
	ReferencedImagePaths() ([]string, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{db: db}
}

func (r *ItemRepositoryImpl[T]) Create(item *models.Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return insertIndexEntry(tx, item)
	})
}

func (r *ItemRepositoryImpl[T]) CreateBatch(items []*models.Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			if err := insertIndexEntry(tx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ItemRepositoryImpl[T]) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl[T]) Update(item *models.Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE items_fts
			SET name = ?, description = ?, box_code = ?
			WHERE rowid = ?`,
			item.Name, derefOrEmpty(item.Description), item.BoxCode, item.ID).Error
	})
}

func (r *ItemRepositoryImpl[T]) Delete(item *models.Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Item{}, item.ID).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM items_fts WHERE rowid = ?`, item.ID).Error
	})
}

func (r *ItemRepositoryImpl[T]) List(boxCode string, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	query := r.db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset)
	if boxCode != "" {
		query = query.Where("box_code = ?", boxCode)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchMatch runs an FTS5 MATCH query ranked by bm25 with name weighted
// above description above box code, recency breaking ties.
func (r *ItemRepositoryImpl[T]) SearchMatch(matchExpr, boxCode string, limit int) ([]models.Item, error) {
	var items []models.Item
	sql := `
		SELECT i.id, i.name, i.description, i.image_path, i.box_code, i.created_at
		FROM items_fts JOIN items i ON items_fts.rowid = i.id
		WHERE items_fts MATCH ?`
	args := []interface{}{matchExpr}
	if boxCode != "" {
		sql += ` AND i.box_code = ?`
		args = append(args, boxCode)
	}
	sql += `
		ORDER BY bm25(items_fts, 1.0, 0.8, 0.3) ASC, i.created_at DESC, i.id DESC
		LIMIT ?`
	args = append(args, limit)
	if err := r.db.Raw(sql, args...).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchLike is the substring safety net: every token must appear in name
// or description.
func (r *ItemRepositoryImpl[T]) SearchLike(tokens []string, boxCode string, limit int) ([]models.Item, error) {
	var items []models.Item
	conds := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2+2)
	for _, token := range tokens {
		conds = append(conds, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + token + "%"
		args = append(args, pattern, pattern)
	}
	sql := `
		SELECT id, name, description, image_path, box_code, created_at
		FROM items
		WHERE ` + strings.Join(conds, " AND ")
	if boxCode != "" {
		sql += ` AND box_code = ?`
		args = append(args, boxCode)
	}
	sql += `
		ORDER BY created_at DESC, id DESC
		LIMIT ?`
	args = append(args, limit)
	if err := r.db.Raw(sql, args...).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) ReferencedImagePaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&models.Item{}).
		Where("image_path IS NOT NULL").
		Pluck("image_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func insertIndexEntry(tx *gorm.DB, item *models.Item) error {
	return tx.Exec(`
		INSERT INTO items_fts(rowid, name, description, box_code)
		VALUES (?, ?, ?, ?)`,
		item.ID, item.Name, derefOrEmpty(item.Description), item.BoxCode).Error
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
