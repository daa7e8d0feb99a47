// Package osfs exposes the host filesystem through the ports.FileSystem port.
package osfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// FS implements ports.FileSystem on the host OS.
type FS struct {
	// root, when set, anchors relative paths. Absolute paths and ~
	// expansion ignore it.
	root string
}

// New returns a host filesystem.
func New() *FS {
	return &FS{}
}

// NewRooted returns a host filesystem that resolves relative paths
// against root.
func NewRooted(root string) *FS {
	return &FS{root: root}
}

// Expand resolves a leading ~ to the user's home directory and anchors
// relative paths to the configured root. The ~user form is passed
// through untouched.
func (f *FS) Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		if f.root != "" && !filepath.IsAbs(path) {
			return filepath.Join(f.root, path), nil
		}
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &domain.Error{
			Kind:    domain.KindBackendFailure,
			Message: fmt.Sprintf("resolve home directory: %v", err),
			Err:     err,
		}
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// Stat reports whether path exists and what it is.
func (f *FS) Stat(path string) (ports.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ports.FileInfo{}, classify(err)
	}
	return ports.FileInfo{IsDir: info.IsDir()}, nil
}

// ReadText returns the file's content, refusing non-UTF-8 data.
func (f *FS) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify(err)
	}
	if !utf8.Valid(data) {
		return "", domain.Errf(domain.KindDecodeFailure, "%s: content is not valid UTF-8", path)
	}
	return string(data), nil
}

// List returns the directory's members. os.ReadDir already sorts by name.
func (f *FS) List(path string) ([]ports.Entry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]ports.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ports.Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

// classify maps OS errors onto the domain taxonomy.
func classify(err error) error {
	kind := domain.KindBackendFailure
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = domain.KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = domain.KindPermissionDenied
	}
	return &domain.Error{Kind: kind, Message: err.Error(), Err: err}
}

var _ ports.FileSystem = (*FS)(nil)
