package fs

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// AFSFileSystem resolves paths against a root URL and delegates to viant/afs,
// so the same generator runs against local disk or mem:// storage.
type AFSFileSystem struct {
	root string
	fs   afs.Service
}

// NewAFSFileSystem roots the file system at root, which is either a local
// directory or a storage URL such as mem://localhost/site.
func NewAFSFileSystem(root string) *AFSFileSystem {
	return &AFSFileSystem{
		root: url.Normalize(root, file.Scheme),
		fs:   afs.New(),
	}
}

func (s *AFSFileSystem) resolve(p string) string {
	if strings.Contains(p, "://") {
		return p
	}
	if path.IsAbs(p) {
		return url.Normalize(p, file.Scheme)
	}
	return url.Join(s.root, path.Clean(p))
}

func (s *AFSFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	return s.fs.DownloadWithURL(ctx, s.resolve(p))
}

// ReadDir lists the names of the regular files directly inside p.
func (s *AFSFileSystem) ReadDir(ctx context.Context, p string) ([]string, error) {
	objects, err := s.fs.List(ctx, s.resolve(p))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(objects))
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		names = append(names, object.Name())
	}
	return names, nil
}

func (s *AFSFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	return s.fs.Upload(ctx, s.resolve(p), file.DefaultFileOsMode, bytes.NewReader(data))
}

func (s *AFSFileSystem) MkdirAll(ctx context.Context, p string) error {
	target := s.resolve(p)
	exists, err := s.fs.Exists(ctx, target)
	if err != nil {
		return fmt.Errorf("check %s: %w", target, err)
	}
	if exists {
		return nil
	}
	return s.fs.Create(ctx, target, file.DefaultDirOsMode, true)
}
