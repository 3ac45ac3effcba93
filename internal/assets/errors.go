package assets

import "fmt"

// LoadError reports an image that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FontError reports a font that could not be opened, parsed or rasterized.
type FontError struct {
	Path string
	Err  error
}

func (e *FontError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("assets: font: %v", e.Err)
	}
	return fmt.Sprintf("assets: font %s: %v", e.Path, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
