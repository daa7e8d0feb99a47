package ports

// FileInfo describes a path that exists.
type FileInfo struct {
	IsDir bool
}

// Entry is one directory member.
type Entry struct {
	Name  string
	IsDir bool
}

// FileSystem defines read-only filesystem access for the file tools.
// Implementations classify their failures with the pkg/domain taxonomy:
// domain.KindNotFound, domain.KindPermissionDenied and
// domain.KindDecodeFailure for content that is not valid UTF-8.
type FileSystem interface {
	// Expand resolves user shorthand such as a leading ~.
	Expand(path string) (string, error)

	// Stat reports whether path exists and what it is.
	Stat(path string) (FileInfo, error)

	// ReadText returns the file's content, refusing non-UTF-8 data.
	ReadText(path string) (string, error)

	// List returns the directory's members sorted by name.
	List(path string) ([]Entry, error)
}
