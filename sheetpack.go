/*
Package sheetpack builds packed sprite-atlas bundles.

A sprite sheet is a named, ordered set of individual source images. Building
one produces three resolution tiers of the same atlas: reduced (quarter
resolution), half and full, each as a lossless PNG plus an XML property-list
manifest describing where every sprite landed inside the atlas. When a
content cache holds a previously built result for the sheet, the build is
skipped and the cached artifacts are extracted instead.
*/
package sheetpack

import (
	"io"

	"github.com/charmbracelet/log"
)

// Builder produces sheet bundles, fresh or from a cache. The namespace is
// prefixed onto every frame key in the manifests to keep keys from colliding
// across atlases built by different mods.
type Builder struct {
	cache     Cache
	namespace string
	logger    *log.Logger

	// buildTier is swapped out by tests to count invocations.
	buildTier func(sheet *SpriteSheet, t tier, bundle SheetBundle) error
}

// New returns a Builder using the given cache and frame-key namespace. A nil
// cache means every sheet is built from scratch; a nil logger discards all
// progress output.
func New(cache Cache, namespace string, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Builder{
		cache:     cache,
		namespace: namespace,
		logger:    logger,
	}
	b.buildTier = b.renderAndWriteTier
	return b
}
