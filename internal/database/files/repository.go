// Package files provides database operations for book file attachments.
package files

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/entities"
)

var ErrNotFound = errors.New("file not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(file *entities.BookFile) error {
	return r.db.Create(file).Error
}

func (r *Repository) GetByID(id uint) (*entities.BookFile, error) {
	var file entities.BookFile
	err := r.db.First(&file, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.BookFile{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListByBook(bookID uint) ([]entities.BookFile, error) {
	var list []entities.BookFile
	err := r.db.Where("book_id = ?", bookID).Find(&list).Error
	return list, err
}

func (r *Repository) CountByBook(bookID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookFile{}).Where("book_id = ?", bookID).Count(&count).Error
	return count, err
}
