package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/openshelf/internal/entities"
)

var defaultUserTypes = []entities.UserType{
	{Name: "Member", Code: "member"},
	{Name: "Librarian", Code: "librarian"},
	{Name: "Administrator", Code: "admin"},
}

var defaultPermissions = []entities.Permission{
	{Name: "Read catalog", PermissionType: "read", ModelTypes: "book,author"},
	{Name: "Manage catalog", PermissionType: "write", ModelTypes: "book,author,book_file"},
	{Name: "Manage users", PermissionType: "write", ModelTypes: "user,user_type"},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Permission{},
		&entities.UserType{},
		&entities.User{},
		&entities.Author{},
		&entities.Book{},
		&entities.BookFile{},
		&entities.Purchase{},
		&entities.Renting{},
		&entities.Booking{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedUserTypes(); err != nil {
		return nil, fmt.Errorf("failed to seed user types: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedUserTypes() error {
	for _, perm := range defaultPermissions {
		var existing entities.Permission
		result := d.DB.Where("name = ?", perm.Name).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&perm).Error; err != nil {
				return fmt.Errorf("failed to create permission %s: %w", perm.Name, err)
			}
		}
	}

	for _, userType := range defaultUserTypes {
		var existing entities.UserType
		result := d.DB.Where("code = ?", userType.Code).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&userType).Error; err != nil {
				return fmt.Errorf("failed to create user type %s: %w", userType.Code, err)
			}
			log.Printf("Created user type: %s", userType.Name)
		}
	}
	return nil
}
