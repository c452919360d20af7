package services

import (
	"errors"
	"time"

	"github.com/openshelf/openshelf/internal/database/authors"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/validation"
)

// AuthorService implements author catalog operations.
type AuthorService struct {
	authors *authors.Repository
	books   *books.Repository
}

func NewAuthorService(authorRepo *authors.Repository, bookRepo *books.Repository) *AuthorService {
	return &AuthorService{authors: authorRepo, books: bookRepo}
}

type AuthorInput struct {
	Name        string     `json:"name"`
	Biography   string     `json:"biography"`
	BirthDate   *time.Time `json:"birth_date"`
	Nationality string     `json:"nationality"`
}

func (s *AuthorService) CreateAuthor(in AuthorInput) (*entities.Author, error) {
	if result := validation.Author(in.Name); !result.OK() {
		return nil, validationError(result)
	}

	author := &entities.Author{
		Name:        in.Name,
		Biography:   in.Biography,
		BirthDate:   in.BirthDate,
		Nationality: in.Nationality,
	}
	if err := s.authors.Create(author); err != nil {
		return nil, internalError("failed to create author", err)
	}
	return author, nil
}

func (s *AuthorService) GetAuthor(id uint) (*entities.Author, error) {
	author, err := s.authors.GetByID(id)
	if err != nil {
		if errors.Is(err, authors.ErrNotFound) {
			return nil, notFoundError("author")
		}
		return nil, internalError("failed to load author", err)
	}
	return author, nil
}

func (s *AuthorService) UpdateAuthor(id uint, in AuthorInput) (*entities.Author, error) {
	if result := validation.Author(in.Name); !result.OK() {
		return nil, validationError(result)
	}

	author, err := s.GetAuthor(id)
	if err != nil {
		return nil, err
	}

	author.Name = in.Name
	author.Biography = in.Biography
	author.BirthDate = in.BirthDate
	author.Nationality = in.Nationality

	if err := s.authors.Save(author); err != nil {
		return nil, internalError("failed to update author", err)
	}
	return author, nil
}

// DeleteAuthor refuses to remove an author that still has catalog entries,
// matching the refuse-if-referenced policy for books.
func (s *AuthorService) DeleteAuthor(id uint) error {
	if _, err := s.GetAuthor(id); err != nil {
		return err
	}

	count, err := s.books.CountByAuthor(id)
	if err != nil {
		return internalError("failed to count author books", err)
	}
	if count > 0 {
		return conflictError("author still has books in the catalog")
	}

	if err := s.authors.Delete(id); err != nil {
		if errors.Is(err, authors.ErrNotFound) {
			return notFoundError("author")
		}
		return internalError("failed to delete author", err)
	}
	return nil
}

// AuthorBooks returns the books whose author foreign key matches the id.
func (s *AuthorService) AuthorBooks(id uint) ([]entities.Book, error) {
	if _, err := s.GetAuthor(id); err != nil {
		return nil, err
	}

	list, err := s.books.GetByAuthor(id)
	if err != nil {
		return nil, internalError("failed to load author books", err)
	}
	return list, nil
}
