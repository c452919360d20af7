// Package local implements the storage client on the local filesystem. Blobs
// are flat files under a single uploads directory; the locator is the file
// name.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Client struct {
	dir string
}

// NewClient creates the uploads directory if needed.
func NewClient(dir string) (*Client, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", dir, err)
	}
	return &Client{dir: dir}, nil
}

func (c *Client) Store(ctx context.Context, name string, content io.Reader) (string, error) {
	path, err := c.resolve(name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return name, nil
}

func (c *Client) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	path, err := c.resolve(locator)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (c *Client) Delete(ctx context.Context, locator string) error {
	path, err := c.resolve(locator)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (c *Client) Exists(ctx context.Context, locator string) (bool, error) {
	path, err := c.resolve(locator)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// resolve rejects locators that would escape the uploads directory.
func (c *Client) resolve(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return filepath.Join(c.dir, name), nil
}
