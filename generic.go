package flatpix

import "image"

// Image is the read capability shared by flatpix views: standard library
// image access plus typed pixel reads.
//
// GetPixel panics outside the declared dimensions; At returns the zero
// color instead. Inner accessors are deliberately absent: a view is its
// own innermost image and returns itself with a concrete type.
type Image[P Pixel[S, P], S Scalar] interface {
	image.Image
	Dimensions() (int, int)
	InBounds(x, y int) bool
	GetPixel(x, y int) P
}

// MutableImage additionally grants exclusive per-pixel write access.
type MutableImage[P Pixel[S, P], S Scalar] interface {
	Image[P, S]
	GetPixelMut(x, y int) []S
	PutPixel(x, y int, p P)
	BlendPixel(x, y int, p P)
}

var (
	_ Image[RGBA8, uint8]        = (*View[RGBA8, uint8])(nil)
	_ Image[Gray16, uint16]      = (*View[Gray16, uint16])(nil)
	_ Image[RGBA8, uint8]        = (*ViewMut[RGBA8, uint8])(nil)
	_ MutableImage[RGBA8, uint8] = (*ViewMut[RGBA8, uint8])(nil)
	_ MutableImage[Gray8, uint8] = (*ViewMut[Gray8, uint8])(nil)
	_ image.Image                = (*View[BGRA8, uint8])(nil)
	_ image.Image                = (*ViewMut[RGBA16, uint16])(nil)
)
