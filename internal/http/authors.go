package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/services"
)

type AuthorsController struct {
	authors *services.AuthorService
}

func NewAuthorsController(authors *services.AuthorService) *AuthorsController {
	return &AuthorsController{authors: authors}
}

func (controller *AuthorsController) Create(c *gin.Context) {
	var in services.AuthorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := controller.authors.CreateAuthor(in)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, author)
}

func (controller *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := controller.authors.GetAuthor(id)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (controller *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in services.AuthorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := controller.authors.UpdateAuthor(id, in)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (controller *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.authors.DeleteAuthor(id); err != nil {
		respondOperationError(c, err)
		return
	}
	respondSuccess(c, "author deleted")
}

// Books lists the books written by one author.
func (controller *AuthorsController) Books(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	books, err := controller.authors.AuthorBooks(id)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}
