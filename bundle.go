package sheetpack

import (
	"path/filepath"
)

// Bundles returns the three-tier bundle for sheet, writing all six artifact
// files into workingDir. If the cache holds a previous build of this sheet
// the artifacts are extracted from it and nothing is rebuilt; otherwise the
// reduced, half and full tiers are built from the source images in that
// order. Fresh builds are not inserted back into the cache.
func (b *Builder) Bundles(sheet *SpriteSheet, workingDir string) (*SheetBundles, error) {
	b.logger.Info("fetching spritesheet", "sheet", sheet.Name)

	out := NewSheetBundles(filepath.Join(workingDir, sheet.Name))

	if b.cache != nil {
		if loc, ok := b.cache.Lookup(out.CacheKey(workingDir)); ok {
			return b.extractBundles(sheet, loc, out)
		}
	}

	b.logger.Info("sheet is not cached, building from scratch", "sheet", sheet.Name)

	bundles := out.tierBundles()
	for i, t := range tiers {
		b.logger.Info("building tier", "sheet", sheet.Name, "tier", t.name)
		if err := b.buildTier(sheet, t, bundles[i]); err != nil {
			return nil, err
		}
	}

	b.logger.Info("built spritesheet", "sheet", sheet.Name)

	return out, nil
}

// extractBundles reconstructs all six artifacts of a cached build in the
// working directory. Entry names are derived from the cached location with
// the same naming convention a fresh build uses, so the pairing of entries
// to destinations is fixed by construction.
func (b *Builder) extractBundles(sheet *SpriteSheet, loc string, out *SheetBundles) (*SheetBundles, error) {
	b.logger.Info("using cached files", "sheet", sheet.Name)

	entries := NewSheetBundles(loc).artifacts()
	dests := out.artifacts()

	for i := range entries {
		b.logger.Info("extracting from cache", "entry", entries[i])
		if err := b.cache.Extract(loc, entries[i], dests[i]); err != nil {
			return nil, &CacheError{Sheet: sheet.Name, Entry: entries[i], Err: err}
		}
	}

	b.logger.Info("fetched from cache", "sheet", sheet.Name)

	return out, nil
}
