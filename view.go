package flatpix

import (
	"fmt"
	"image"
	"image/color"
)

// View is a read-only image over a strided sample buffer.
//
// A View is only obtained through AsView, which proves up front that
// every sample the declared geometry can address lies inside the backing
// slice. After that single proof, pixel reads resolve indices with plain
// arithmetic and no further bounds re-checking.
//
// The pixel type parameter P fixes the channel interpretation at compile
// time and has no runtime footprint.
//
// A View holds a shared lease on the backing slice: any number of views
// may read it concurrently, but callers must not shrink or repoint the
// slice while a view is in use. Writes through retained aliases are
// visible to the view.
type View[P Pixel[S, P], S Scalar] struct {
	inner Buffer[S]
}

// AsView interprets buf as a read-only image of pixel type P.
//
// Construction validates, in order: the backing slice must hold every
// sample the geometry can address, otherwise ErrTooLarge; the declared
// channel count must equal P's arity, otherwise ErrWrongColor. A
// geometry whose index computation overflows fails unconditionally with
// ErrTooLarge, as no slice could satisfy it. An empty geometry (zero
// width, height or channels) validates against a required length of
// zero.
//
// The rejected buffer is returned to the caller unchanged; recovery
// options are adjusting the strides or copying into a normalized layout,
// see NormalizeNRGBA.
func AsView[P Pixel[S, P], S Scalar](buf Buffer[S]) (*View[P, S], error) {
	need, ok := buf.MinLength()
	if !ok || len(buf.Samples) < need {
		Logger().Debug("flatpix: view rejected",
			"reason", "too large",
			"len", len(buf.Samples),
			"width", buf.Width, "height", buf.Height, "channels", buf.Channels)
		return nil, ErrTooLarge
	}
	var zero P
	if buf.Channels != zero.Channels() {
		Logger().Debug("flatpix: view rejected",
			"reason", "wrong color",
			"channels", buf.Channels, "arity", zero.Channels())
		return nil, ErrWrongColor
	}
	return &View[P, S]{inner: buf}, nil
}

// Dimensions returns the view's (width, height).
func (v *View[P, S]) Dimensions() (int, int) {
	return v.inner.Width, v.inner.Height
}

// Width returns the view's width.
func (v *View[P, S]) Width() int { return v.inner.Width }

// Height returns the view's height.
func (v *View[P, S]) Height() int { return v.inner.Height }

// Bounds returns the view's bounding rectangle, anchored at the origin.
func (v *View[P, S]) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.inner.Width, v.inner.Height)
}

// InBounds reports whether (x, y) lies inside the view's dimensions.
func (v *View[P, S]) InBounds(x, y int) bool {
	return x >= 0 && x < v.inner.Width && y >= 0 && y < v.inner.Height
}

// GetPixel returns the pixel at (x, y).
//
// It panics if (x, y) lies outside the view's dimensions. The dimensions
// are authoritative for the view's whole lifetime, so crossing them is a
// programmer error, not a data condition.
func (v *View[P, S]) GetPixel(x, y int) P {
	if !v.inner.InBounds(x, y, 0) {
		panic(fmt.Sprintf("flatpix: pixel (%d, %d) out of bounds (%dx%d)",
			x, y, v.inner.Width, v.inner.Height))
	}
	var zero P
	n := int(zero.Channels())
	base := v.inner.InBoundsIndex(x, y, 0)
	var scratch [MaxChannels]S
	for c := 0; c < n; c++ {
		scratch[c] = v.inner.Samples[base+c*v.inner.ChannelStride]
	}
	return zero.FromSamples(scratch[:n])
}

// At returns the color of the pixel at (x, y), satisfying image.Image.
// Unlike GetPixel it follows the standard library convention of
// returning the zero color outside the bounds.
func (v *View[P, S]) At(x, y int) color.Color {
	if !v.InBounds(x, y) {
		var zero P
		return zero.Color()
	}
	return v.GetPixel(x, y).Color()
}

// ColorModel returns the color model of the pixel type P.
func (v *View[P, S]) ColorModel() color.Model {
	var zero P
	return zero.ColorModel()
}

// Inner returns the view itself; there is no other inner image to proxy.
func (v *View[P, S]) Inner() *View[P, S] {
	return v
}

// Flat returns the underlying buffer description, sharing the backing
// slice.
func (v *View[P, S]) Flat() Buffer[S] {
	return v.inner.Ref()
}
