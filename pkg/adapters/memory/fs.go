package memory

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// FS is a map-backed ports.FileSystem. Paths are slash separated and
// used verbatim; AddFile registers parent directories on the way up.
// Safe for concurrent use.
type FS struct {
	// Home, when set, is what a leading ~ expands to.
	Home string

	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewFS creates an empty filesystem.
func NewFS() *FS {
	return &FS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

// AddFile stores content under p and creates the parent directories.
func (f *FS) AddFile(p string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[p] = content
	f.addParents(p)
}

// AddDir creates an empty directory.
func (f *FS) AddDir(p string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[p] = struct{}{}
	f.addParents(p)
}

func (f *FS) addParents(p string) {
	for {
		parent := path.Dir(p)
		if parent == p || parent == "." || parent == "/" {
			return
		}
		f.dirs[parent] = struct{}{}
		p = parent
	}
}

// Expand resolves a leading ~ against Home when Home is set, and
// passes everything else through untouched.
func (f *FS) Expand(p string) (string, error) {
	if f.Home == "" {
		return p, nil
	}
	if p == "~" {
		return f.Home, nil
	}
	if strings.HasPrefix(p, "~/") {
		return path.Join(f.Home, p[2:]), nil
	}
	return p, nil
}

// Stat reports whether p exists and what it is.
func (f *FS) Stat(p string) (ports.FileInfo, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if _, ok := f.dirs[p]; ok {
		return ports.FileInfo{IsDir: true}, nil
	}
	if _, ok := f.files[p]; ok {
		return ports.FileInfo{IsDir: false}, nil
	}
	return ports.FileInfo{}, notFound(p)
}

// ReadText returns the file's content, refusing non-UTF-8 data.
func (f *FS) ReadText(p string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, ok := f.files[p]
	if !ok {
		return "", notFound(p)
	}
	if !utf8.Valid(data) {
		return "", domain.Errf(domain.KindDecodeFailure, "%s: content is not valid UTF-8", p)
	}
	return string(data), nil
}

// List returns the directory's direct members sorted by name.
func (f *FS) List(p string) ([]ports.Entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if _, ok := f.dirs[p]; !ok {
		if _, isFile := f.files[p]; isFile {
			return nil, domain.Errf(domain.KindBackendFailure, "%s: not a directory", p)
		}
		return nil, notFound(p)
	}

	var entries []ports.Entry
	for name := range f.files {
		if path.Dir(name) == p {
			entries = append(entries, ports.Entry{Name: path.Base(name)})
		}
	}
	for name := range f.dirs {
		if name != p && path.Dir(name) == p {
			entries = append(entries, ports.Entry{Name: path.Base(name), IsDir: true})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func notFound(p string) error {
	return &domain.Error{
		Kind:    domain.KindNotFound,
		Message: fmt.Sprintf("stat %s: no such file or directory", p),
	}
}

var _ ports.FileSystem = (*FS)(nil)
