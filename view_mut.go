package flatpix

import (
	"fmt"
	"image"
	"image/color"
)

// ViewMut is a mutable image over a strided sample buffer.
//
// A ViewMut is only obtained through AsViewMut, which proves that no two
// in-bounds pixel slots overlap and that each pixel's samples are
// contiguous. Those two facts make it sound to hand out exclusive sample
// slices for individual pixels.
//
// A ViewMut holds an exclusive lease on the backing slice for its whole
// lifetime: while it is in use, callers must not touch the slice through
// retained aliases and must not change its length or repoint it. The
// lease is a documented contract, not a runtime check; the view is not
// re-validated if the caller breaks it.
type ViewMut[P Pixel[S, P], S Scalar] struct {
	inner Buffer[S]
}

// AsViewMut interprets buf as a mutable image of pixel type P.
//
// Construction validates, strictly in this order: the layout must be
// free of aliasing, otherwise a NormalFormError requiring
// NormalFormUnaliased; each pixel's samples must be packed, i.e.
// ChannelStride must be 1, otherwise a NormalFormError requiring
// NormalFormPixelPacked; the backing slice must hold every addressable
// sample as in AsView, otherwise ErrTooLarge. The order is load-bearing:
// pixel packing alone does not rule out aliasing across rows or columns,
// so aliasing is excluded first.
//
// The declared channel count is not compared against P's arity; pixel
// accesses slice P's arity worth of samples from each pixel base.
func AsViewMut[P Pixel[S, P], S Scalar](buf Buffer[S]) (*ViewMut[P, S], error) {
	if buf.HasAliasedSamples() {
		Logger().Debug("flatpix: mutable view rejected",
			"reason", "aliased samples",
			"strides", []int{buf.HeightStride, buf.WidthStride, buf.ChannelStride})
		return nil, NormalFormError{Required: NormalFormUnaliased}
	}
	if buf.ChannelStride != 1 {
		Logger().Debug("flatpix: mutable view rejected",
			"reason", "unpacked pixels",
			"channelStride", buf.ChannelStride)
		return nil, NormalFormError{Required: NormalFormPixelPacked}
	}
	need, ok := buf.MinLength()
	if !ok || len(buf.Samples) < need {
		Logger().Debug("flatpix: mutable view rejected",
			"reason", "too large",
			"len", len(buf.Samples),
			"width", buf.Width, "height", buf.Height, "channels", buf.Channels)
		return nil, ErrTooLarge
	}
	return &ViewMut[P, S]{inner: buf}, nil
}

// Dimensions returns the view's (width, height).
func (v *ViewMut[P, S]) Dimensions() (int, int) {
	return v.inner.Width, v.inner.Height
}

// Width returns the view's width.
func (v *ViewMut[P, S]) Width() int { return v.inner.Width }

// Height returns the view's height.
func (v *ViewMut[P, S]) Height() int { return v.inner.Height }

// Bounds returns the view's bounding rectangle, anchored at the origin.
func (v *ViewMut[P, S]) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.inner.Width, v.inner.Height)
}

// InBounds reports whether (x, y) lies inside the view's dimensions.
func (v *ViewMut[P, S]) InBounds(x, y int) bool {
	return x >= 0 && x < v.inner.Width && y >= 0 && y < v.inner.Height
}

// GetPixel returns the pixel at (x, y).
//
// It panics if (x, y) lies outside the view's dimensions, as on the
// read-only view.
func (v *ViewMut[P, S]) GetPixel(x, y int) P {
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

// GetPixelMut returns the contiguous samples of the pixel at (x, y),
// aliasing the backing slice. Writing through the returned slice writes
// through the view.
//
// It panics if (x, y) lies outside the view's dimensions. The slice's
// capacity is clipped so it cannot reach past its own pixel. It remains
// valid until the view is released.
func (v *ViewMut[P, S]) GetPixelMut(x, y int) []S {
	if !v.inner.InBounds(x, y, 0) {
		panic(fmt.Sprintf("flatpix: pixel (%d, %d) out of bounds (%dx%d)",
			x, y, v.inner.Width, v.inner.Height))
	}
	var zero P
	n := int(zero.Channels())
	base := v.inner.InBoundsIndex(x, y, 0)
	return v.inner.Samples[base : base+n : base+n]
}

// PutPixel overwrites the pixel at (x, y) wholesale.
func (v *ViewMut[P, S]) PutPixel(x, y int, p P) {
	p.StoreSamples(v.GetPixelMut(x, y))
}

// BlendPixel blends src into the pixel at (x, y) using the pixel type's
// blend operation.
func (v *ViewMut[P, S]) BlendPixel(x, y int, src P) {
	px := v.GetPixelMut(x, y)
	var zero P
	cur := zero.FromSamples(px)
	cur.Blend(src).StoreSamples(px)
}

// At returns the color of the pixel at (x, y), satisfying image.Image.
// Unlike GetPixel it follows the standard library convention of
// returning the zero color outside the bounds.
func (v *ViewMut[P, S]) At(x, y int) color.Color {
	if !v.InBounds(x, y) {
		var zero P
		return zero.Color()
	}
	return v.GetPixel(x, y).Color()
}

// ColorModel returns the color model of the pixel type P.
func (v *ViewMut[P, S]) ColorModel() color.Model {
	var zero P
	return zero.ColorModel()
}

// Inner returns the view itself; there is no other inner image to proxy.
func (v *ViewMut[P, S]) Inner() *ViewMut[P, S] {
	return v
}

// Flat returns the underlying buffer description, sharing the backing
// slice. Reads and writes through the returned buffer break the view's
// exclusive lease.
func (v *ViewMut[P, S]) Flat() Buffer[S] {
	return v.inner.Ref()
}
