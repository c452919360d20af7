package entities

import (
	"time"
)

// User is a registered library member. PasswordHash holds the bcrypt
// digest and is never serialized.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:100" json:"username"`
	PasswordHash string     `gorm:"size:100" json:"-"`
	Email        string     `gorm:"uniqueIndex;size:255" json:"email"`
	Address      string     `gorm:"size:255" json:"address,omitempty"`
	FirstName    string     `gorm:"size:100" json:"first_name,omitempty"`
	LastName     string     `gorm:"size:100" json:"last_name,omitempty"`
	PhoneNumber  string     `gorm:"size:30" json:"phone_number,omitempty"`
	Picture      string     `gorm:"size:1024" json:"picture,omitempty"`
	UserTypes    []UserType `gorm:"many2many:user_user_types;" json:"user_types,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UserType struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:100" json:"name"`
	Code        string       `gorm:"uniqueIndex;size:50" json:"code"`
	Permissions []Permission `gorm:"many2many:user_type_permissions;" json:"permissions,omitempty"`
}

type Permission struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100" json:"name"`
	PermissionType string `gorm:"size:50" json:"permission_type"`
	// Comma-separated model type tags the permission applies to.
	ModelTypes string `gorm:"size:255" json:"model_types"`
}

type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"index;size:256" json:"name"`
	Biography   string     `gorm:"type:text" json:"biography,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Nationality string     `gorm:"size:100" json:"nationality,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

type Book struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"index;size:512" json:"title"`
	AuthorID        uint       `gorm:"index" json:"author_id"`
	Author          Author     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PublicationDate time.Time  `json:"publication_date"`
	PurchasePrice   float64    `json:"purchase_price"`
	RentalPrice     float64    `json:"rental_price"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	Genre           string     `gorm:"size:100" json:"genre,omitempty"`
	Files           []BookFile `gorm:"foreignKey:BookID" json:"files,omitempty"`
	Purchases       []Purchase `gorm:"foreignKey:BookID" json:"-"`
	Rentings        []Renting  `gorm:"foreignKey:BookID" json:"-"`
	Bookings        []Booking  `gorm:"foreignKey:BookID" json:"-"`
}

// BookFile records an uploaded attachment. Size is the rounded size in
// kilobytes, stringified. URL is the blob store locator.
type BookFile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	BookID uint   `gorm:"index" json:"book_id"`
	Type   string `gorm:"size:50" json:"type"`
	Size   string `gorm:"size:20" json:"size"`
	URL    string `gorm:"size:1024" json:"url,omitempty"`
}

type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	BookID       uint      `gorm:"index" json:"book_id"`
	PurchaseDate time.Time `json:"purchase_date"`
}

// Renting holds a rental period and its derived price. Price is nil when
// either date was missing at creation time, so an unpriced rental is
// distinguishable from a free one.
type Renting struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index" json:"user_id"`
	BookID     uint       `gorm:"index" json:"book_id"`
	StartDate  time.Time  `json:"start_date"`
	ReturnDate time.Time  `json:"return_date"`
	Price      *float64   `json:"price,omitempty"`
}

type Booking struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index" json:"user_id"`
	BookID uint      `gorm:"index" json:"book_id"`
	Date   time.Time `json:"date"`
}

func (User) TableName() string {
	return "users"
}

func (UserType) TableName() string {
	return "user_types"
}

func (Permission) TableName() string {
	return "permissions"
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (BookFile) TableName() string {
	return "book_files"
}

func (Purchase) TableName() string {
	return "purchases"
}

func (Renting) TableName() string {
	return "rentings"
}

func (Booking) TableName() string {
	return "bookings"
}
