package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	ErrInvalidImageName = errors.New("invalid image file name")
	ErrImageTooLarge    = errors.New("image file too large")
)

// No leading dot, no "..", no separators.
const imageNamePattern = `^(?!\.)(?!.*\.\.)[\w\-. ()]{1,255}$`

var imageNameExp = regexp2.MustCompile(imageNamePattern, regexp2.None)

// DiskImageStore writes uploaded images into a directory, keeping the
// client-supplied file name. An existing file with the same name is replaced.
type DiskImageStore struct {
	dir      string
	maxBytes int64
}

func NewDiskImageStore(dir string, maxBytes int64) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &DiskImageStore{
		dir:      dir,
		maxBytes: maxBytes,
	}, nil
}

func (s *DiskImageStore) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name, err := imageName(file.Filename)
	if err != nil {
		return "", err
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes > %d", ErrImageTooLarge, file.Size, s.maxBytes)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("file.Open -> %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("io.Copy -> %w", err)
	}
	if err = dst.Close(); err != nil {
		return "", fmt.Errorf("dst.Close -> %w", err)
	}

	return name, nil
}

// Remove deletes a previously stored image. A missing file is not an error.
func (s *DiskImageStore) Remove(_ context.Context, name string) error {
	name, err := imageName(name)
	if err != nil {
		return err
	}

	if err = os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

// imageName strips any client-side directories and checks what is left.
func imageName(filename string) (string, error) {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))

	ok, err := imageNameExp.MatchString(name)
	if err != nil {
		return "", fmt.Errorf("imageNameExp.MatchString -> %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageName, filename)
	}

	return name, nil
}
