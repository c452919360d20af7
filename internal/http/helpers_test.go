package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
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
	"github.com/openshelf/openshelf/internal/services"
	"github.com/openshelf/openshelf/internal/storage/providers/local"
)

type testApp struct {
	db     *database.Database
	router *gin.Engine
	tokens *auth.TokenManager
}

func setupTestApp(t *testing.T) (*testApp, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	blobs, err := local.NewClient(t.TempDir())
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", "openshelf-test", time.Hour)

	userRepo := users.NewRepository(db.DB)
	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	rentalRepo := rentals.NewRepository(db.DB)
	fileRepo := files.NewRepository(db.DB)

	userService := services.NewUserService(userRepo, auth.PasswordHasher{Cost: bcrypt.MinCost}, tokens)
	authorService := services.NewAuthorService(authorRepo, bookRepo)
	bookService := services.NewBookService(bookRepo, authorRepo, rentalRepo, fileRepo)
	fileService := services.NewFileService(fileRepo, bookService, blobs)

	router := NewRouter(RouterConfig{
		Users:   NewUsersController(userService, time.Hour, false),
		Authors: NewAuthorsController(authorService),
		Books:   NewBooksController(bookService),
		Files:   NewFilesController(fileService),
		Health:  NewHealthController(db),
		Auth:    auth.NewMiddleware(tokens),
	})

	app := &testApp{db: db, router: router, tokens: tokens}
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return app, cleanup
}

// sessionCookie issues a valid session token for an existing user.
func (app *testApp) sessionCookie(t *testing.T, user *entities.User) *http.Cookie {
	t.Helper()
	token, err := app.tokens.Issue(user.ID, user.Email)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (app *testApp) request(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func createUser(t *testing.T, app *testApp, username, email string) *entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entities.User{Username: username, Email: email, PasswordHash: string(hash)}
	require.NoError(t, app.db.DB.Create(user).Error)
	return user
}

func createAuthor(t *testing.T, app *testApp, name string) *entities.Author {
	t.Helper()
	author := &entities.Author{Name: name}
	require.NoError(t, app.db.DB.Create(author).Error)
	return author
}

func createBook(t *testing.T, app *testApp, authorID uint, title string, rentalPrice float64) *entities.Book {
	t.Helper()
	book := &entities.Book{Title: title, AuthorID: authorID, RentalPrice: rentalPrice}
	require.NoError(t, app.db.DB.Create(book).Error)
	return book
}
