// Package flatpix overlays linear sample buffers with a strided
// (row, column, channel) addressing scheme and validates that the
// resulting layout can be used as a typed image view without copying.
//
// # Overview
//
// flatpix is the import boundary of the GoGPU image world. Sample buffers
// produced by decoders, capture devices, memory-mapped files or foreign
// APIs rarely arrive in the canonical row-major layout; they come with
// padded rows, planar channels, column-major ordering or broadcast tricks
// like zero strides. A Buffer describes such a layout with three
// independent strides and no construction-time invariants. The validating
// constructors AsView and AsViewMut prove, once, that the described
// geometry cannot reach outside the buffer or alias distinct pixels, and
// return typed views whose per-pixel access needs no further bounds
// analysis.
//
// # Quick Start
//
//	import "github.com/gogpu/flatpix"
//
//	// Describe a decoder's buffer: 3 channels, rows padded to 256 samples.
//	buf := flatpix.Buffer[uint8]{
//		Samples:       raw,
//		Channels:      3,
//		ChannelStride: 1,
//		Width:         80,
//		WidthStride:   3,
//		Height:        60,
//		HeightStride:  256,
//	}
//
//	view, err := flatpix.AsView[flatpix.RGB8](buf)
//	if err != nil {
//		// Buffer too short, or RGB8 does not match the channel count.
//	}
//	px := view.GetPixel(10, 20)
//
// # Validation Model
//
// Construction-time failures (ErrTooLarge, ErrWrongColor, NormalFormError)
// are recoverable: the caller keeps the untouched buffer and may adjust
// strides or copy into a normalized layout. Access outside a view's
// declared dimensions is a programmer error and panics. Arithmetic
// overflow during validation is never wrapped silently; ambiguous layouts
// are always rejected.
//
// # Architecture
//
// The library is organized into:
//   - Layout core: Buffer, overflow-checked index resolution, aliasing
//     analysis, normal forms
//   - Typed views: View, ViewMut and the Image/MutableImage capabilities
//   - Pixel types: Gray8 through RGBA16 with stdlib color interop
//   - Interop: wrappers for the standard image types, normalization via
//     golang.org/x/image/draw, texture descriptors via gogpu/gputypes
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - A sample index is x*WidthStride + y*HeightStride + c*ChannelStride
package flatpix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
