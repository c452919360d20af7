package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/services"
)

// maxUploadBytes caps a single attachment at 32 MiB.
const maxUploadBytes = 32 << 20

type FilesController struct {
	files *services.FileService
}

func NewFilesController(files *services.FileService) *FilesController {
	return &FilesController{files: files}
}

// Upload attaches a multipart file to a book. The form field is "file".
func (controller *FilesController) Upload(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "missing file field")
		return
	}
	if header.Size > maxUploadBytes {
		respondBadRequest(c, "file too large")
		return
	}

	content, err := header.Open()
	if err != nil {
		respondBadRequest(c, "unreadable file")
		return
	}
	defer content.Close()

	file, err := controller.files.AttachFile(
		c.Request.Context(),
		bookID,
		content,
		header.Size,
		header.Header.Get("Content-Type"),
		header.Filename,
	)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	respondCreated(c, file)
}

func (controller *FilesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.files.DeleteFile(c.Request.Context(), id); err != nil {
		respondOperationError(c, err)
		return
	}
	respondSuccess(c, "file deleted")
}

// List returns the attachments of one book.
func (controller *FilesController) List(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	files, err := controller.files.BookFiles(bookID)
	if err != nil {
		respondOperationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}
