package assets

import (
	"bytes"
	"errors"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"

	"github.com/charmbracelet/log"
)

// ErrNoUpload is returned when a Loader has no upload function.
var ErrNoUpload = errors.New("no upload function")

// UploadFunc turns a decoded image into a renderer resource.
type UploadFunc[T any] func(img image.Image) (T, error)

// Loader decodes images from a filesystem and uploads them as textures.
type Loader[T any] struct {
	fsys   fs.FS
	upload UploadFunc[T]
	free   func(T)
	logger *log.Logger
}

// NewLoader creates a loader reading from fsys. free releases uploaded
// resources and may be nil.
func NewLoader[T any](fsys fs.FS, upload UploadFunc[T], free func(T), logger *log.Logger) *Loader[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader[T]{
		fsys:   fsys,
		upload: upload,
		free:   free,
		logger: logger,
	}
}

// DecodeImage reads and decodes one image file.
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// LoadTexture loads path into h. Whatever h held before is released first;
// on failure h is left unset and a *LoadError is returned.
func (l *Loader[T]) LoadTexture(h *Handle[T], path string) error {
	h.Release()

	img, err := DecodeImage(l.fsys, path)
	if err != nil {
		l.logger.Error("unable to load image", "path", path, "error", err)
		return err
	}

	if l.upload == nil {
		return &LoadError{Path: path, Err: ErrNoUpload}
	}
	res, err := l.upload(img)
	if err != nil {
		l.logger.Error("unable to create texture", "path", path, "error", err)
		return &LoadError{Path: path, Err: err}
	}

	b := img.Bounds()
	h.Set(res, b.Dx(), b.Dy(), l.free)
	l.logger.Debug("texture loaded", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}

// LoadSet loads every name/path pair into set. All pairs are attempted;
// the returned error joins every failure.
func (l *Loader[T]) LoadSet(set *Set[T], paths map[string]string, order []string) error {
	var errs []error
	for _, name := range order {
		path, ok := paths[name]
		if !ok {
			continue
		}
		if err := l.LoadTexture(set.Handle(name), path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
