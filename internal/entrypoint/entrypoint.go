package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/auth"
	"github.com/openshelf/openshelf/internal/config"
	"github.com/openshelf/openshelf/internal/database"
	"github.com/openshelf/openshelf/internal/database/authors"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/database/files"
	"github.com/openshelf/openshelf/internal/database/rentals"
	"github.com/openshelf/openshelf/internal/database/users"
	http_controllers "github.com/openshelf/openshelf/internal/http"
	"github.com/openshelf/openshelf/internal/scheduler"
	"github.com/openshelf/openshelf/internal/services"
	"github.com/openshelf/openshelf/internal/storage/providers/local"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting OpenShelf v%s", version)

	if cfg.Auth.TokenSecret == "" {
		log.Fatalf("Token secret is not set. Set the 'AUTH_TOKEN_SECRET' environment variable.")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	blobs, err := local.NewClient(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage at %s: %v", cfg.Storage.UploadsDir, err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenLifetime)

	userRepo := users.NewRepository(db.DB)
	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	rentalRepo := rentals.NewRepository(db.DB)
	fileRepo := files.NewRepository(db.DB)

	userService := services.NewUserService(userRepo, auth.PasswordHasher{Cost: cfg.Auth.BcryptCost}, tokens)
	authorService := services.NewAuthorService(authorRepo, bookRepo)
	bookService := services.NewBookService(bookRepo, authorRepo, rentalRepo, fileRepo)
	fileService := services.NewFileService(fileRepo, bookService, blobs)

	var sweeper *scheduler.OverdueSweeper
	if cfg.Sweep.Enabled {
		sweeper = scheduler.NewOverdueSweeper(rentalRepo, cfg.Sweep.Schedule)
		if err := sweeper.Start(); err != nil {
			log.Fatalf("Failed to start overdue sweep: %v", err)
		}
		log.Printf("Overdue rental sweep scheduled: %s", cfg.Sweep.Schedule)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Users:   http_controllers.NewUsersController(userService, cfg.Auth.TokenLifetime, cfg.Auth.SecureCookies),
		Authors: http_controllers.NewAuthorsController(authorService),
		Books:   http_controllers.NewBooksController(bookService),
		Files:   http_controllers.NewFilesController(fileService),
		Health:  http_controllers.NewHealthController(db),
		Auth:    auth.NewMiddleware(tokens),
	})

	Serve(router, cfg, func(ctx context.Context) {
		if sweeper != nil {
			sweeper.Stop()
		}
	})
}
