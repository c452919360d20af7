package services

import (
	"errors"
	"time"

	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/database/files"
	"github.com/openshelf/openshelf/internal/database/rentals"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/pricing"
	"github.com/openshelf/openshelf/internal/validation"
)

// BookService implements catalog and transaction operations on books.
type BookService struct {
	books   *books.Repository
	authors authorChecker
	rentals *rentals.Repository
	files   *files.Repository
}

// authorChecker is the slice of the author repository the book operations
// need: resolving the author reference at create/update time.
type authorChecker interface {
	Exists(id uint) (bool, error)
}

func NewBookService(bookRepo *books.Repository, authors authorChecker, rentalRepo *rentals.Repository, fileRepo *files.Repository) *BookService {
	return &BookService{
		books:   bookRepo,
		authors: authors,
		rentals: rentalRepo,
		files:   fileRepo,
	}
}

type BookInput struct {
	Title           string    `json:"title"`
	AuthorID        uint      `json:"author_id"`
	PublicationDate time.Time `json:"publication_date"`
	PurchasePrice   float64   `json:"purchase_price"`
	RentalPrice     float64   `json:"rental_price"`
	Description     string    `json:"description"`
	Genre           string    `json:"genre"`
}

// CreateBook validates the candidate and its author reference, then saves.
func (s *BookService) CreateBook(in BookInput) (*entities.Book, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	book := &entities.Book{
		Title:           in.Title,
		AuthorID:        in.AuthorID,
		PublicationDate: in.PublicationDate,
		PurchasePrice:   in.PurchasePrice,
		RentalPrice:     in.RentalPrice,
		Description:     in.Description,
		Genre:           in.Genre,
	}
	if err := s.books.Create(book); err != nil {
		return nil, internalError("failed to create book", err)
	}
	return s.GetBook(book.ID)
}

func (s *BookService) GetBook(id uint) (*entities.Book, error) {
	book, err := s.books.GetByID(id)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			return nil, notFoundError("book")
		}
		return nil, internalError("failed to load book", err)
	}
	return book, nil
}

func (s *BookService) UpdateBook(id uint, in BookInput) (*entities.Book, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}

	book.Title = in.Title
	book.AuthorID = in.AuthorID
	book.PublicationDate = in.PublicationDate
	book.PurchasePrice = in.PurchasePrice
	book.RentalPrice = in.RentalPrice
	book.Description = in.Description
	book.Genre = in.Genre

	if err := s.books.Save(book); err != nil {
		return nil, internalError("failed to update book", err)
	}
	return s.GetBook(id)
}

// DeleteBook refuses to remove a book with dependent purchase, renting,
// booking, or file rows.
func (s *BookService) DeleteBook(id uint) error {
	if _, err := s.GetBook(id); err != nil {
		return err
	}

	dependents, err := s.rentals.CountByBook(id)
	if err != nil {
		return internalError("failed to count book transactions", err)
	}
	fileCount, err := s.files.CountByBook(id)
	if err != nil {
		return internalError("failed to count book files", err)
	}
	if dependents+fileCount > 0 {
		return conflictError("book has purchases, rentals, bookings, or files")
	}

	if err := s.books.Delete(id); err != nil {
		if errors.Is(err, books.ErrNotFound) {
			return notFoundError("book")
		}
		return internalError("failed to delete book", err)
	}
	return nil
}

// PurchaseBook records a purchase of an existing book at the current time.
func (s *BookService) PurchaseBook(userID, bookID uint) (*entities.Purchase, error) {
	if _, err := s.GetBook(bookID); err != nil {
		return nil, err
	}

	purchase := &entities.Purchase{
		UserID:       userID,
		BookID:       bookID,
		PurchaseDate: time.Now(),
	}
	if err := s.rentals.CreatePurchase(purchase); err != nil {
		return nil, internalError("failed to create purchase", err)
	}
	return purchase, nil
}

// RentBook computes the rental price from the book's current rate and the
// date range, then persists the renting. The price is computed exactly once,
// here, before the save; when either date is absent it stays unset.
func (s *BookService) RentBook(userID, bookID uint, startDate, returnDate time.Time) (*entities.Renting, error) {
	book, err := s.GetBook(bookID)
	if err != nil {
		return nil, err
	}

	if result := validation.RentalPeriod(startDate, returnDate); !result.OK() {
		return nil, validationError(result)
	}

	renting := &entities.Renting{
		UserID:     userID,
		BookID:     bookID,
		StartDate:  startDate,
		ReturnDate: returnDate,
	}
	if !startDate.IsZero() && !returnDate.IsZero() {
		price := pricing.RentalPrice(startDate, returnDate, book.RentalPrice)
		renting.Price = &price
	}

	if err := s.rentals.CreateRenting(renting); err != nil {
		return nil, internalError("failed to create renting", err)
	}
	return renting, nil
}

// BookReservation records a booking of an existing book dated now.
func (s *BookService) BookReservation(userID, bookID uint) (*entities.Booking, error) {
	if _, err := s.GetBook(bookID); err != nil {
		return nil, err
	}

	booking := &entities.Booking{
		UserID: userID,
		BookID: bookID,
		Date:   time.Now(),
	}
	if err := s.rentals.CreateBooking(booking); err != nil {
		return nil, internalError("failed to create booking", err)
	}
	return booking, nil
}

func (s *BookService) validateInput(in BookInput) error {
	if result := validation.Book(in.Title, in.AuthorID, in.PurchasePrice, in.RentalPrice); !result.OK() {
		return validationError(result)
	}

	exists, err := s.authors.Exists(in.AuthorID)
	if err != nil {
		return internalError("failed to check author", err)
	}
	if !exists {
		return validationError(validation.Result{Violations: []validation.Violation{
			{Field: "author_id", Reason: validation.ReasonInvalid},
		}})
	}
	return nil
}
