package ports

// FileSystem abstracts file system operations.
//
// Implementations report a missing path with an error that satisfies
// errors.Is(err, fs.ErrNotExist).
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it.
	WriteFile(path string, data []byte) error

	// Remove deletes a regular file. Directories are rejected.
	Remove(path string) error
}
