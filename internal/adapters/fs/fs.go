package fs

import "context"

// FileSystem is the storage the generator reads widgets from and writes pages
// to. Paths are slash separated and relative to the file system root unless
// they are absolute or carry a URL scheme.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadDir(ctx context.Context, path string) ([]string, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	MkdirAll(ctx context.Context, path string) error
}
