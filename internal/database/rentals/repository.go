// Package rentals provides database operations for the transactional side of
// the catalog: purchases, rentings, and bookings.
package rentals

import (
	"time"

	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePurchase(purchase *entities.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *Repository) CreateRenting(renting *entities.Renting) error {
	return r.db.Create(renting).Error
}

func (r *Repository) CreateBooking(booking *entities.Booking) error {
	return r.db.Create(booking).Error
}

// ListOverdue returns rentings whose return date is in the past.
func (r *Repository) ListOverdue(now time.Time) ([]entities.Renting, error) {
	var rentings []entities.Renting
	err := r.db.Where("return_date < ?", now).Order("return_date ASC").Find(&rentings).Error
	return rentings, err
}

// CountByBook counts purchase, renting, and booking rows referencing the
// book. Used by the refuse-if-referenced delete policy.
func (r *Repository) CountByBook(bookID uint) (int64, error) {
	var total, count int64

	if err := r.db.Model(&entities.Purchase{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.Model(&entities.Renting{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.Model(&entities.Booking{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	return total, nil
}

// ListPurchasesByUser returns a user's purchase history.
func (r *Repository) ListPurchasesByUser(userID uint) ([]entities.Purchase, error) {
	var purchases []entities.Purchase
	err := r.db.Where("user_id = ?", userID).Order("purchase_date DESC").Find(&purchases).Error
	return purchases, err
}

// ListRentingsByUser returns a user's rental history.
func (r *Repository) ListRentingsByUser(userID uint) ([]entities.Renting, error) {
	var rentings []entities.Renting
	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&rentings).Error
	return rentings, err
}
