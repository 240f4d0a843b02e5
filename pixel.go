package flatpix

import "image/color"

// Floats is a constraint for floating-point sample types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer sample types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer sample types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Scalar is the constraint for all types a sample buffer may hold.
type Scalar interface {
	Floats | SignedInts | UnsignedInts
}

// MaxChannels is the largest channel arity supported by pixel access.
// Channel counts are stored as uint8, so every valid descriptor fits the
// fixed gather scratch and per-pixel reads never touch the heap.
const MaxChannels = 256

// Pixel is the capability a concrete pixel type provides to views: a
// fixed-arity group of samples of scalar type S representing one image
// location. The second type parameter is the pixel type itself, which
// lets the capability construct and blend values without dynamic dispatch:
//
//	type View[P Pixel[S, P], S Scalar] ...
//
// All methods use value receivers; FromSamples ignores its receiver and
// acts as a constructor, so generic code calls it on the zero value.
type Pixel[S Scalar, P any] interface {
	// Channels reports the channel arity of the pixel type.
	Channels() uint8

	// FromSamples builds a pixel from one sample per channel. The receiver
	// is ignored. src must hold at least Channels() samples.
	FromSamples(src []S) P

	// StoreSamples writes the pixel's samples, one per channel, into dst.
	// dst must hold at least Channels() samples.
	StoreSamples(dst []S)

	// Blend composites src over the receiver and returns the result.
	// Pixel types without an alpha channel replace instead of blending.
	Blend(src P) P

	// Color converts the pixel to a standard library color.
	Color() color.Color

	// ColorModel returns the standard library color model matching this
	// pixel type.
	ColorModel() color.Model
}
