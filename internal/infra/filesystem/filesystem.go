// Package filesystem answers directory existence questions for the installer.
package filesystem

import (
	"os"

	"github.com/runoshun/install-deps/internal/domain"
)

// Client implements domain.DirChecker using os.Stat.
type Client struct{}

// NewClient creates a new filesystem client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.DirChecker interface.
var _ domain.DirChecker = (*Client)(nil)

// IsDir reports whether path exists and is a directory. Symlinks are
// followed; a stat error of any kind counts as "not a directory".
func (c *Client) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
