// Package handoff makes the chosen repository available to the shell that
// started the picker. The picker runs in a child process and cannot change its
// parent's working directory, so the path is written to a file that a shell
// function reads after the picker exits.
package handoff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gitjump/internal/domain"
)

// FileDeliverer writes the chosen item's path as a single line to Path
type FileDeliverer struct {
	Path string
}

// NewFileDeliverer creates a deliverer writing to path
func NewFileDeliverer(path string) *FileDeliverer {
	return &FileDeliverer{Path: path}
}

// Deliver replaces the result file with the item's path
func (d *FileDeliverer) Deliver(item domain.Item) error {
	if err := os.MkdirAll(filepath.Dir(d.Path), 0755); err != nil {
		return fmt.Errorf("failed to create result directory: %w", err)
	}

	// Write to a sibling file first so a reader never sees a partial line
	tmp := d.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(item.Path+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	if err := os.Rename(tmp, d.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write result file: %w", err)
	}
	return nil
}

// Clear removes a result left over from an earlier session. A missing file is
// not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear result file: %w", err)
	}
	return nil
}
