package flatpix

import (
	"math"
	"unsafe"

	"github.com/gogpu/gputypes"
)

// TextureFormat returns the GPU texture format matching the pixel type
// P, or TextureFormatUndefined when no linear format matches.
func (v *View[P, S]) TextureFormat() gputypes.TextureFormat {
	var zero P
	switch any(zero).(type) {
	case RGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case Gray8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// UploadLayout describes the view's memory as a queue texture write: the
// data layout of a single tightly packed 2D copy plus its extent, ready
// for a WriteTexture call.
//
// It reports false when the layout cannot be uploaded in place: rows
// must be contiguous runs of whole pixels (ChannelStride 1, WidthStride
// equal to the channel count), consecutive rows must not overlap, and
// the byte geometry must fit the descriptor's 32-bit fields. Rejected
// views can be normalized first, see NormalizeNRGBA.
func (v *View[P, S]) UploadLayout() (gputypes.TextureDataLayout, gputypes.Extent3D, bool) {
	if v.inner.ChannelStride != 1 || v.inner.WidthStride != int(v.inner.Channels) {
		return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, false
	}
	rowLen, ok := checkedMul(v.inner.Width, int(v.inner.Channels))
	if !ok || v.inner.HeightStride < rowLen || v.inner.Height < 0 {
		return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, false
	}
	var s S
	bytesPerRow, ok := checkedMul(v.inner.HeightStride, int(unsafe.Sizeof(s)))
	if !ok || uint64(bytesPerRow) > math.MaxUint32 ||
		uint64(v.inner.Width) > math.MaxUint32 ||
		uint64(v.inner.Height) > math.MaxUint32 {
		return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, false
	}
	layout := gputypes.TextureDataLayout{
		BytesPerRow:  uint32(bytesPerRow),
		RowsPerImage: uint32(v.inner.Height),
	}
	extent := gputypes.Extent3D{
		Width:              uint32(v.inner.Width),
		Height:             uint32(v.inner.Height),
		DepthOrArrayLayers: 1,
	}
	return layout, extent, true
}
