package sheetpack

import (
	"path/filepath"
	"strings"
)

// SpriteSheet identifies one logical atlas group: a name plus the ordered
// source images that go into it. It is supplied by the caller and never
// modified here.
type SpriteSheet struct {
	Name  string
	Files []string
}

// SheetBundle is one resolution tier's artifact pair on disk.
type SheetBundle struct {
	Image    string
	Manifest string
}

// SheetBundles is the full output of one sheet build. The three tiers are
// always produced (or extracted) together; a partial triple is never valid.
type SheetBundles struct {
	Reduced SheetBundle
	Half    SheetBundle
	Full    SheetBundle
}

func newSheetBundle(base string) SheetBundle {
	return SheetBundle{
		Image:    base + ".png",
		Manifest: base + ".plist",
	}
}

// NewSheetBundles derives the tier triple for a sheet from its base path,
// which may or may not carry an extension already. The half and full tiers
// take the fixed -hd and -uhd suffixes; the reduced tier is unsuffixed.
func NewSheetBundles(base string) *SheetBundles {
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return &SheetBundles{
		Reduced: newSheetBundle(base),
		Half:    newSheetBundle(base + "-hd"),
		Full:    newSheetBundle(base + "-uhd"),
	}
}

// CacheKey returns the one stable cache key for the whole tier triple: the
// reduced-tier image path, made relative to workingDir when it is absolute
// so the key does not change between relative and absolute invocations.
func (b *SheetBundles) CacheKey(workingDir string) string {
	if !filepath.IsAbs(b.Reduced.Image) {
		return b.Reduced.Image
	}
	if rel, err := filepath.Rel(workingDir, b.Reduced.Image); err == nil {
		return rel
	}
	return b.Reduced.Image
}

// artifacts enumerates all six files of the triple, image before manifest
// within each tier, reduced tier first. Cache extraction iterates this list
// so a hit always touches exactly these files.
func (b *SheetBundles) artifacts() [6]string {
	return [6]string{
		b.Reduced.Image, b.Reduced.Manifest,
		b.Half.Image, b.Half.Manifest,
		b.Full.Image, b.Full.Manifest,
	}
}

// tierBundles returns the per-tier bundles in build order.
func (b *SheetBundles) tierBundles() [3]SheetBundle {
	return [3]SheetBundle{b.Reduced, b.Half, b.Full}
}
