package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/openshelf/internal/auth"
	"github.com/openshelf/openshelf/internal/database"
	"github.com/openshelf/openshelf/internal/database/authors"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/database/files"
	"github.com/openshelf/openshelf/internal/database/rentals"
	"github.com/openshelf/openshelf/internal/database/users"
	"github.com/openshelf/openshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()

	dbPath := "./test_services_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func newUserService(db *database.Database) *UserService {
	return NewUserService(
		users.NewRepository(db.DB),
		auth.PasswordHasher{Cost: bcrypt.MinCost},
		auth.NewTokenManager("test-secret", "openshelf-test", 24*time.Hour),
	)
}

func newBookService(db *database.Database) *BookService {
	return NewBookService(
		books.NewRepository(db.DB),
		authors.NewRepository(db.DB),
		rentals.NewRepository(db.DB),
		files.NewRepository(db.DB),
	)
}

func newAuthorService(db *database.Database) *AuthorService {
	return NewAuthorService(authors.NewRepository(db.DB), books.NewRepository(db.DB))
}

func createTestAuthor(t *testing.T, db *database.Database, name string) *entities.Author {
	t.Helper()
	author := &entities.Author{Name: name, Biography: "test biography"}
	require.NoError(t, db.DB.Create(author).Error)
	return author
}

func createTestBook(t *testing.T, db *database.Database, authorID uint, title string, rentalPrice float64) *entities.Book {
	t.Helper()
	book := &entities.Book{
		Title:           title,
		AuthorID:        authorID,
		PublicationDate: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice:   25,
		RentalPrice:     rentalPrice,
	}
	require.NoError(t, db.DB.Create(book).Error)
	return book
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "unexpected error: %v", err)
}

// fakeBlobStore is an in-memory storage client. When failDelete is set,
// Delete always errors, for exercising the best-effort delete path.
type fakeBlobStore struct {
	blobs      map[string][]byte
	failDelete bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (f *fakeBlobStore) Store(_ context.Context, name string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.blobs[name] = data
	return name, nil
}

func (f *fakeBlobStore) Open(_ context.Context, locator string) (io.ReadCloser, error) {
	data, ok := f.blobs[locator]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", locator)
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (f *fakeBlobStore) Delete(_ context.Context, locator string) error {
	if f.failDelete {
		return fmt.Errorf("blob store unavailable")
	}
	delete(f.blobs, locator)
	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, locator string) (bool, error) {
	_, ok := f.blobs[locator]
	return ok, nil
}
