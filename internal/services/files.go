package services

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/openshelf/openshelf/internal/database/files"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/storage"
)

// FileService implements attachment operations: classifying, storing, and
// removing uploaded book files.
type FileService struct {
	files *files.Repository
	books bookChecker
	blobs storage.Client
}

// bookChecker resolves the book reference a file is attached to.
type bookChecker interface {
	GetBook(id uint) (*entities.Book, error)
}

func NewFileService(fileRepo *files.Repository, books bookChecker, blobs storage.Client) *FileService {
	return &FileService{files: fileRepo, books: books, blobs: blobs}
}

// AttachFile stores the upload in the blob store and links a BookFile record
// to the book. Metadata is derived per the classification rules: MIME
// primary segment, rounded KB size, random storage name.
func (s *FileService) AttachFile(ctx context.Context, bookID uint, content io.Reader, byteCount int64, mimeType, originalName string) (*entities.BookFile, error) {
	if _, err := s.books.GetBook(bookID); err != nil {
		return nil, err
	}

	info := storage.Classify(byteCount, mimeType, originalName)

	locator, err := s.blobs.Store(ctx, info.StorageName, content)
	if err != nil {
		return nil, internalError("failed to store file", err)
	}

	file := &entities.BookFile{
		BookID: bookID,
		Type:   info.Type,
		Size:   info.SizeKB,
		URL:    locator,
	}
	if err := s.files.Create(file); err != nil {
		return nil, internalError("failed to create file record", err)
	}
	return file, nil
}

// DeleteFile removes the database record and issues a best-effort delete to
// the blob store. A blob that cannot be deleted is logged, never surfaced:
// the record removal already succeeded.
func (s *FileService) DeleteFile(ctx context.Context, fileID uint) error {
	file, err := s.files.GetByID(fileID)
	if err != nil {
		if errors.Is(err, files.ErrNotFound) {
			return notFoundError("file")
		}
		return internalError("failed to load file", err)
	}

	if err := s.files.Delete(fileID); err != nil {
		return internalError("failed to delete file record", err)
	}

	if file.URL != "" {
		if err := s.blobs.Delete(ctx, file.URL); err != nil {
			log.Printf("Failed to delete blob %s for file %d: %v", file.URL, fileID, err)
		}
	}
	return nil
}

// BookFiles lists the attachments of an existing book.
func (s *FileService) BookFiles(bookID uint) ([]entities.BookFile, error) {
	if _, err := s.books.GetBook(bookID); err != nil {
		return nil, err
	}
	list, err := s.files.ListByBook(bookID)
	if err != nil {
		return nil, internalError("failed to list book files", err)
	}
	return list, nil
}
