// Package sprite loads individual sprite images and prepares them for
// packing: decoding to straight-alpha RGBA, resolution downscaling and
// color-depth reduction.
package sprite

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Codecs for the accepted sprite formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Stages at which loading a sprite can fail.
const (
	StageOpen   = "open"   // file unreadable
	StageDecode = "decode" // contents not a supported image
)

// DecodeError reports a sprite that could not be loaded.
type DecodeError struct {
	Path  string
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Stage == StageOpen {
		return fmt.Sprintf("sprite: reading %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("sprite: decoding %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Sprite is one named source image. The pixel buffer is straight-alpha
// NRGBA regardless of the source format.
type Sprite struct {
	Name  string
	Image *image.NRGBA
}

// Load decodes the image at path. The sprite's name is the file's base name
// with the extension stripped.
func Load(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Stage: StageOpen, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Stage: StageDecode, Err: err}
	}

	return &Sprite{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Image: imaging.Clone(img),
	}, nil
}
