// Package storage defines the blob store contract for uploaded book files
// and the helper that derives attachment metadata from raw uploads.
package storage

import (
	"context"
	"io"
)

// Client is the interface for blob storage operations. Implementations live
// under providers/.
type Client interface {
	// Store writes content under the given name and returns a locator that
	// can later be passed to Open and Delete.
	Store(ctx context.Context, name string, content io.Reader) (string, error)

	// Open retrieves the contents of a stored blob.
	Open(ctx context.Context, locator string) (io.ReadCloser, error)

	// Delete removes a stored blob.
	Delete(ctx context.Context, locator string) error

	// Exists checks whether a blob is present.
	Exists(ctx context.Context, locator string) (bool, error)
}
