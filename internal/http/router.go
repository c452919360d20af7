package http

import (
	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/auth"
)

// RouterConfig bundles everything the router needs.
type RouterConfig struct {
	Users   *UsersController
	Authors *AuthorsController
	Books   *BooksController
	Files   *FilesController
	Health  *HealthController
	Auth    *auth.Middleware
}

// NewRouter wires all routes. Everything except registration, login, and the
// health probes sits behind the session middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cfg.Auth.Handler())

	router.GET("/health", cfg.Health.Health)
	router.GET("/ping", cfg.Health.Ping)

	router.POST("/register", cfg.Users.Register)
	router.POST("/login", cfg.Users.Login)
	router.GET("/authenticated-user", cfg.Users.AuthenticatedUser)
	router.PUT("/update-info", cfg.Users.UpdateInfo)
	router.PUT("/update-password", cfg.Users.UpdatePassword)
	router.POST("/logout", cfg.Users.Logout)

	router.POST("/authors", cfg.Authors.Create)
	router.GET("/authors/:id", cfg.Authors.Get)
	router.PUT("/authors/:id", cfg.Authors.Update)
	router.DELETE("/authors/:id", cfg.Authors.Delete)
	router.GET("/authors/:id/books", cfg.Authors.Books)

	router.POST("/books", cfg.Books.Create)
	router.GET("/books/:bookId", cfg.Books.Get)
	router.PUT("/books/:bookId", cfg.Books.Update)
	router.DELETE("/books/:bookId", cfg.Books.Delete)
	router.POST("/books/:bookId/purchase", cfg.Books.Purchase)
	router.POST("/books/:bookId/rent", cfg.Books.Rent)
	router.POST("/books/:bookId/book", cfg.Books.Reserve)

	router.POST("/books/:bookId/files", cfg.Files.Upload)
	router.GET("/books/:bookId/files", cfg.Files.List)
	router.DELETE("/files/:id", cfg.Files.Delete)

	return router
}
