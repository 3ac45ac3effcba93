package assets

import (
	"io/fs"

	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TrueType/OpenType font kept as raw bytes so a renderer
// can build its own face from it.
type Font struct {
	Path string
	Name string // Full font name from the name table, if present
	Data []byte
}

// LoadFont reads and parses the font at path.
// Fails with *FontError when the file is missing or is not a font.
func LoadFont(fsys fs.FS, path string) (*Font, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}

	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = ""
	}

	return &Font{
		Path: path,
		Name: name,
		Data: data,
	}, nil
}
