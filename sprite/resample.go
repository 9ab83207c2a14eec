package sprite

import (
	"image"

	"github.com/disintegration/imaging"
)

// bayer4 is the classic 4x4 ordered-dither threshold matrix.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// ditherValue reduces an 8-bit channel value to 16 levels using threshold
// t (0..15), re-expanded to 8 bits. The comparison is the usual ordered
// dither in integer form: bump the quantized level when the remainder
// exceeds (t + 0.5)/16 of a quantization step.
func ditherValue(v uint8, t int) uint8 {
	scaled := int(v) * 15
	q := scaled / 255
	if 32*(scaled%255) > 255*(2*t+1) {
		q++
	}
	return uint8(q * 17)
}

// Downscale resizes img by an integer factor using Lanczos resampling, then
// reduces all four channels to RGBA4444 depth with an ordered dither. A
// factor of 1 leaves the resolution untouched; the color reduction happens
// regardless, since the atlas always targets a 16-bit texture format. The
// returned image may alias img.
func Downscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor > 1 {
		b := img.Bounds()
		w, h := b.Dx()/factor, b.Dy()/factor
		// imaging treats a zero dimension as preserve-aspect, never ask for one
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			t := bayer4[(y-b.Min.Y)&3][(x-b.Min.X)&3]
			for c := i; c < i+4; c++ {
				img.Pix[c] = ditherValue(img.Pix[c], t)
			}
		}
	}

	return img
}
