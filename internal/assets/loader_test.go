package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font/gofont/goregular"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"media/rock.png":     {Data: pngBytes(t, 120, 90)},
		"media/paper.png":    {Data: pngBytes(t, 100, 100)},
		"media/broken.png":   {Data: []byte("not a png")},
		"media/regular.ttf":  {Data: goregular.TTF},
		"media/notafont.ttf": {Data: []byte("garbage")},
	}
}

// uploadCounter records uploads and frees of fake textures.
type uploadCounter struct {
	uploads int
	frees   int
	fail    error
}

func (u *uploadCounter) upload(img image.Image) (*fakeTexture, error) {
	if u.fail != nil {
		return nil, u.fail
	}
	u.uploads++
	return &fakeTexture{name: "tex", frees: &u.frees}, nil
}

func newTestLoader(t *testing.T, u *uploadCounter) *Loader[*fakeTexture] {
	return NewLoader(testFS(t), u.upload, freeFake, log.New(io.Discard))
}

func TestLoadTexture(t *testing.T) {
	u := &uploadCounter{}
	l := newTestLoader(t, u)

	var h Handle[*fakeTexture]
	if err := l.LoadTexture(&h, "media/rock.png"); err != nil {
		t.Fatalf("LoadTexture() failed: %v", err)
	}

	if !h.Loaded() {
		t.Fatal("handle should be loaded")
	}
	if w, hh := h.Size(); w != 120 || hh != 90 {
		t.Errorf("Size() = %dx%d, expected 120x90", w, hh)
	}
	if u.uploads != 1 {
		t.Errorf("uploads = %d, expected 1", u.uploads)
	}
}

func TestLoadTextureMissingLeavesHandleUnset(t *testing.T) {
	u := &uploadCounter{}
	l := newTestLoader(t, u)

	var h Handle[*fakeTexture]
	err := l.LoadTexture(&h, "media/nope.png")

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, expected *LoadError", err)
	}
	if loadErr.Path != "media/nope.png" {
		t.Errorf("LoadError.Path = %q", loadErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist: %v", err)
	}
	if h.Loaded() {
		t.Error("handle should stay unset after a failed load")
	}
	if u.uploads != 0 {
		t.Error("nothing should be uploaded for a missing file")
	}
}

func TestLoadTextureUndecodable(t *testing.T) {
	l := newTestLoader(t, &uploadCounter{})

	var h Handle[*fakeTexture]
	err := l.LoadTexture(&h, "media/broken.png")

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, expected *LoadError", err)
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("error should wrap image.ErrFormat: %v", err)
	}
	if h.Loaded() {
		t.Error("handle should stay unset after a failed decode")
	}
}

func TestLoadTextureReloadReleasesPrevious(t *testing.T) {
	u := &uploadCounter{}
	l := newTestLoader(t, u)

	var h Handle[*fakeTexture]
	if err := l.LoadTexture(&h, "media/rock.png"); err != nil {
		t.Fatal(err)
	}

	// Failed reload: old texture is released, handle ends up unset
	if err := l.LoadTexture(&h, "media/broken.png"); err == nil {
		t.Fatal("expected failure")
	}
	if u.frees != 1 {
		t.Errorf("frees = %d, expected 1", u.frees)
	}
	if h.Loaded() {
		t.Error("handle should be unset")
	}
}

func TestLoadTextureUploadFailure(t *testing.T) {
	uploadErr := errors.New("gpu gone")
	l := newTestLoader(t, &uploadCounter{fail: uploadErr})

	var h Handle[*fakeTexture]
	err := l.LoadTexture(&h, "media/paper.png")
	if !errors.Is(err, uploadErr) {
		t.Fatalf("error = %v, expected upload error", err)
	}
	if h.Loaded() {
		t.Error("handle should stay unset")
	}
}

func TestLoadTextureNoUpload(t *testing.T) {
	l := NewLoader[*fakeTexture](testFS(t), nil, nil, log.New(io.Discard))

	var h Handle[*fakeTexture]
	if err := l.LoadTexture(&h, "media/rock.png"); !errors.Is(err, ErrNoUpload) {
		t.Errorf("error = %v, expected ErrNoUpload", err)
	}
}

func TestLoadSetAttemptsEverything(t *testing.T) {
	u := &uploadCounter{}
	l := newTestLoader(t, u)
	set := NewSet[*fakeTexture]()

	paths := map[string]string{
		"rock":     "media/rock.png",
		"paper":    "media/paper.png",
		"scissors": "media/scissors.png",
	}
	err := l.LoadSet(set, paths, []string{"rock", "paper", "scissors"})

	if err == nil {
		t.Fatal("LoadSet() should report the missing scissors image")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Path != "media/scissors.png" {
		t.Errorf("error = %v, expected LoadError for scissors", err)
	}
	if _, ok := set.Get("rock"); !ok {
		t.Error("rock should be loaded despite the scissors failure")
	}
	if _, ok := set.Get("paper"); !ok {
		t.Error("paper should be loaded despite the scissors failure")
	}
	if _, ok := set.Get("scissors"); ok {
		t.Error("scissors should be unset")
	}
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont(testFS(t), "media/regular.ttf")
	if err != nil {
		t.Fatalf("LoadFont() failed: %v", err)
	}
	if len(f.Data) == 0 {
		t.Error("font data should be kept")
	}
	if f.Name == "" {
		t.Error("font name should be read from the name table")
	}
}

func TestLoadFontErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		notExist bool
	}{
		{"missing", "media/ComicSansMS.ttf", true},
		{"not a font", "media/notafont.ttf", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := LoadFont(testFS(t), tc.path)
			if f != nil {
				t.Error("font should be nil on failure")
			}
			var fontErr *FontError
			if !errors.As(err, &fontErr) {
				t.Fatalf("error = %v, expected *FontError", err)
			}
			if fontErr.Path != tc.path {
				t.Errorf("FontError.Path = %q", fontErr.Path)
			}
			if errors.Is(err, fs.ErrNotExist) != tc.notExist {
				t.Errorf("errors.Is(err, fs.ErrNotExist) = %v, expected %v", !tc.notExist, tc.notExist)
			}
		})
	}
}

func TestFontErrorWithoutPath(t *testing.T) {
	err := &FontError{Err: errors.New("empty text")}
	if err.Error() != "assets: font: empty text" {
		t.Errorf("Error() = %q", err.Error())
	}
}
