package sheetpack

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/packbird/sheetpack/pack"
	"github.com/packbird/sheetpack/plist"
	"github.com/packbird/sheetpack/sprite"
)

type tier struct {
	name   string
	factor int
}

// Tier order is fixed: reduced first, then half, then full.
var tiers = [3]tier{
	{"reduced", 4},
	{"half", 2},
	{"full", 1},
}

// renderTier produces one tier's atlas image and encoded manifest entirely
// in memory: decode every source sprite, downscale and dither it, pack the
// lot, then compose the atlas and derive the frame records from the
// placements. The only filesystem access is reading the source images.
func (b *Builder) renderTier(sheet *SpriteSheet, t tier) (*image.NRGBA, []byte, error) {
	sprites := make([]*sprite.Sprite, 0, len(sheet.Files))
	for _, file := range sheet.Files {
		s, err := sprite.Load(file)
		if err != nil {
			return nil, nil, fmt.Errorf("sheet %q, %s tier: %w", sheet.Name, t.name, err)
		}
		s.Image = sprite.Downscale(s.Image, t.factor)
		sprites = append(sprites, s)
	}

	items := make([]pack.Item, len(sprites))
	for i, s := range sprites {
		r := s.Image.Bounds()
		items[i] = pack.Item{Name: s.Name, W: r.Dx(), H: r.Dy()}
	}

	width, err := pack.MaxWidth(items)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %q, %s tier: %w", sheet.Name, t.name, err)
	}

	b.logger.Info("packing sprites", "sheet", sheet.Name, "tier", t.name, "sprites", len(items), "width", width)

	atlas, err := pack.Pack(items, width)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %q, %s tier: %w", sheet.Name, t.name, err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, atlas.Width, atlas.Height))
	manifest := plist.Manifest{}
	for i, p := range atlas.Placements {
		src := sprites[i].Image
		draw.Draw(dst, image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H), src, src.Bounds().Min, draw.Src)

		err := manifest.Add(plist.Key(b.namespace, p.Name), plist.Frame{
			SourceSize: plist.Size{W: p.W, H: p.H},
			FrameSize:  plist.Size{W: p.W, H: p.H},
			FrameRect:  plist.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("sheet %q, %s tier: %w", sheet.Name, t.name, err)
		}
	}

	var buf bytes.Buffer
	if err := manifest.Encode(&buf); err != nil {
		return nil, nil, fmt.Errorf("sheet %q, %s tier: encoding manifest: %w", sheet.Name, t.name, err)
	}

	return dst, buf.Bytes(), nil
}

// renderAndWriteTier is the default buildTier implementation: render the
// tier, then write both artifacts.
func (b *Builder) renderAndWriteTier(sheet *SpriteSheet, t tier, bundle SheetBundle) error {
	atlas, manifest, err := b.renderTier(sheet, t)
	if err != nil {
		return err
	}
	if err := writeTier(bundle, atlas, manifest); err != nil {
		return fmt.Errorf("sheet %q, %s tier: %w", sheet.Name, t.name, err)
	}
	return nil
}

// writeTier is the one place a tier touches the destination directory. A
// failed write is fatal for the sheet; nothing is retried or cleaned up.
func writeTier(bundle SheetBundle, atlas *image.NRGBA, manifest []byte) error {
	f, err := os.Create(bundle.Image)
	if err != nil {
		return err
	}
	if err := png.Encode(f, atlas); err != nil {
		f.Close()
		return fmt.Errorf("encoding %q: %w", bundle.Image, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.WriteFile(bundle.Manifest, manifest, 0o644)
}
