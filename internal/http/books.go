package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/services"
)

type BooksController struct {
	books *services.BookService
}

func NewBooksController(books *services.BookService) *BooksController {
	return &BooksController{books: books}
}

func (controller *BooksController) Create(c *gin.Context) {
	var in services.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := controller.books.CreateBook(in)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, book)
}

func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	book, err := controller.books.GetBook(id)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var in services.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := controller.books.UpdateBook(id, in)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	if err := controller.books.DeleteBook(id); err != nil {
		respondOperationError(c, err)
		return
	}
	respondSuccess(c, "book deleted")
}

// Purchase records an immediate purchase for the authenticated user.
func (controller *BooksController) Purchase(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	purchase, err := controller.books.PurchaseBook(GetUserID(c), bookID)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, purchase)
}

type rentRequest struct {
	StartDate  time.Time `json:"start_date"`
	ReturnDate time.Time `json:"return_date"`
}

func (controller *BooksController) Rent(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var req rentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	renting, err := controller.books.RentBook(GetUserID(c), bookID, req.StartDate, req.ReturnDate)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, renting)
}

// Reserve books a title for later pickup.
func (controller *BooksController) Reserve(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	booking, err := controller.books.BookReservation(GetUserID(c), bookID)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, booking)
}
