/*
Package plist writes sprite-frame manifests as XML property lists in the
legacy schema, format version 3.

The document holds a frames dictionary mapping each frame key to its
geometry, and a metadata dictionary carrying the format version. Geometry is
written in the format's brace grammar, {w, h} for sizes and {{x, y}, {w, h}}
for rectangles, as strings rather than numbers. Frames are emitted in sorted
key order so the same frame set always encodes to identical bytes, whatever
order it was assembled in.
*/
package plist

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

const formatVersion = 3

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Point is an x/y pair in pixels.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Frame records where one sprite lives inside an atlas. Offset holds the
// packer's raw trim offset; its vertical component is negated on encoding,
// as the legacy format expects.
type Frame struct {
	Rotated    bool
	SourceSize Size
	FrameSize  Size
	FrameRect  Rect
	Offset     Point
}

// Key derives the manifest key for a sprite name: any trailing -uhd or -hd
// resolution suffix is stripped, then the name is namespaced and given a
// .png extension. All three tiers of one logical sprite share a key.
func Key(namespace, name string) string {
	if s := strings.TrimSuffix(name, "-uhd"); s != name {
		name = s
	} else {
		name = strings.TrimSuffix(name, "-hd")
	}
	return namespace + "/" + name + ".png"
}

// Manifest maps frame keys to frames.
type Manifest map[string]Frame

// Add inserts a frame, rejecting duplicate keys: two sprites in one sheet
// must not share a name once resolution suffixes are stripped.
func (m Manifest) Add(key string, f Frame) error {
	if _, ok := m[key]; ok {
		return fmt.Errorf("plist: duplicate frame key %q", key)
	}
	m[key] = f
	return nil
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
`

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) printf(format string, args ...interface{}) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *encoder) frame(key string, f Frame) {
	e.printf("\t\t<key>%s</key>\n\t\t<dict>\n", escaper.Replace(key))
	e.printf("\t\t\t<key>spriteOffset</key>\n\t\t\t<string>{%d, %d}</string>\n", f.Offset.X, -f.Offset.Y)
	e.printf("\t\t\t<key>spriteSize</key>\n\t\t\t<string>{%d, %d}</string>\n", f.FrameSize.W, f.FrameSize.H)
	e.printf("\t\t\t<key>spriteSourceSize</key>\n\t\t\t<string>{%d, %d}</string>\n", f.SourceSize.W, f.SourceSize.H)
	e.printf("\t\t\t<key>textureRect</key>\n\t\t\t<string>{{%d, %d}, {%d, %d}}</string>\n",
		f.FrameRect.X, f.FrameRect.Y, f.FrameRect.W, f.FrameRect.H)
	if f.Rotated {
		e.printf("\t\t\t<key>textureRotated</key>\n\t\t\t<true/>\n")
	} else {
		e.printf("\t\t\t<key>textureRotated</key>\n\t\t\t<false/>\n")
	}
	e.printf("\t\t</dict>\n")
}

// Encode writes the manifest to w. Keys are collected and sorted before
// emission; map iteration order never reaches the output.
func (m Manifest) Encode(w io.Writer) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e := &encoder{w: bufio.NewWriter(w)}
	e.printf("%s", header)
	e.printf("<dict>\n")
	e.printf("\t<key>frames</key>\n\t<dict>\n")
	for _, k := range keys {
		e.frame(k, m[k])
	}
	e.printf("\t</dict>\n")
	e.printf("\t<key>metadata</key>\n\t<dict>\n\t\t<key>format</key>\n\t\t<integer>%d</integer>\n\t</dict>\n", formatVersion)
	e.printf("</dict>\n</plist>\n")

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
