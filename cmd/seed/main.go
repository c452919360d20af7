// Command seed creates a database pre-filled with a sample catalog of public
// domain books, their authors, and a demo member account.
// Usage: go run cmd/seed/main.go [-db path/to/openshelf.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/openshelf/internal/auth"
	"github.com/openshelf/openshelf/internal/database"
	"github.com/openshelf/openshelf/internal/entities"
)

const defaultSeedDatabasePath = "./openshelf.db"

func main() {
	dbPath := flag.String("db", defaultSeedDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding database at %s...", *dbPath)

	// Start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	createDemoUser(db)

	for _, seed := range sampleCatalog() {
		author := seed.author
		if err := db.DB.Create(&author).Error; err != nil {
			log.Printf("Failed to save author %s: %v", author.Name, err)
			continue
		}
		for _, book := range seed.books {
			book.AuthorID = author.ID
			if err := db.DB.Create(&book).Error; err != nil {
				log.Printf("Failed to save book %s: %v", book.Title, err)
				continue
			}
			log.Printf("Saved: %s by %s", book.Title, author.Name)
		}
	}

	log.Printf("Seed complete.")
}

func createDemoUser(db *database.Database) {
	hash, err := auth.HashPassword("password123", bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	user := &entities.User{
		Username:     "demomember",
		Email:        "demo@example.com",
		PasswordHash: hash,
	}
	if err := db.DB.Create(user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %q (password: password123)", user.Username)
}

type catalogSeed struct {
	author entities.Author
	books  []entities.Book
}

func sampleCatalog() []catalogSeed {
	return []catalogSeed{
		{
			author: entities.Author{
				Name:        "Jane Austen",
				Nationality: "English",
				BirthDate:   date(1775, time.December, 16),
				Biography:   "Novelist known for social commentary set among the landed gentry.",
			},
			books: []entities.Book{
				{
					Title:           "Pride and Prejudice",
					PublicationDate: mustDate(1813, time.January, 28),
					PurchasePrice:   12.50,
					RentalPrice:     2.00,
					Genre:           "Romance",
				},
				{
					Title:           "Sense and Sensibility",
					PublicationDate: mustDate(1811, time.October, 30),
					PurchasePrice:   11.00,
					RentalPrice:     2.00,
					Genre:           "Romance",
				},
			},
		},
		{
			author: entities.Author{
				Name:        "Herman Melville",
				Nationality: "American",
				BirthDate:   date(1819, time.August, 1),
			},
			books: []entities.Book{
				{
					Title:           "Moby-Dick",
					PublicationDate: mustDate(1851, time.October, 18),
					PurchasePrice:   15.00,
					RentalPrice:     3.00,
					Genre:           "Adventure",
					Description:     "The voyage of the whaling ship Pequod.",
				},
			},
		},
		{
			author: entities.Author{
				Name:        "Mary Shelley",
				Nationality: "English",
				BirthDate:   date(1797, time.August, 30),
			},
			books: []entities.Book{
				{
					Title:           "Frankenstein",
					PublicationDate: mustDate(1818, time.January, 1),
					PurchasePrice:   10.00,
					RentalPrice:     2.50,
					Genre:           "Gothic",
				},
			},
		},
	}
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func mustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
