package flatpix

import (
	"image"

	"golang.org/x/image/draw"
)

// Zero-copy wrappers around the standard library's raster image types.
// Each wrapper reuses the image's Pix slice and Stride unchanged, so the
// resulting buffer aliases the image. Sub-images work: their Pix already
// starts at the sub-rectangle's first pixel and keeps the parent stride,
// which the wrapper carries over as HeightStride.

// FromGray wraps img as a 1-channel byte buffer sharing img.Pix.
func FromGray(img *image.Gray) Buffer[uint8] {
	return Buffer[uint8]{
		Samples:       img.Pix,
		Channels:      1,
		ChannelStride: 1,
		Width:         img.Rect.Dx(),
		WidthStride:   1,
		Height:        img.Rect.Dy(),
		HeightStride:  img.Stride,
	}
}

// FromGray16 wraps img as a 2-channel byte buffer sharing img.Pix. The
// standard library stores Gray16 samples as big-endian byte pairs, so
// channel 0 is the high byte and channel 1 the low byte; the buffer
// describes the raw layout, not a 16-bit gray pixel view.
func FromGray16(img *image.Gray16) Buffer[uint8] {
	return Buffer[uint8]{
		Samples:       img.Pix,
		Channels:      2,
		ChannelStride: 1,
		Width:         img.Rect.Dx(),
		WidthStride:   2,
		Height:        img.Rect.Dy(),
		HeightStride:  img.Stride,
	}
}

// FromAlpha wraps img as a 1-channel byte buffer sharing img.Pix.
func FromAlpha(img *image.Alpha) Buffer[uint8] {
	return Buffer[uint8]{
		Samples:       img.Pix,
		Channels:      1,
		ChannelStride: 1,
		Width:         img.Rect.Dx(),
		WidthStride:   1,
		Height:        img.Rect.Dy(),
		HeightStride:  img.Stride,
	}
}

// FromNRGBA wraps img as a 4-channel byte buffer sharing img.Pix. The
// samples carry straight (non-premultiplied) alpha, matching RGBA8.
func FromNRGBA(img *image.NRGBA) Buffer[uint8] {
	return Buffer[uint8]{
		Samples:       img.Pix,
		Channels:      4,
		ChannelStride: 1,
		Width:         img.Rect.Dx(),
		WidthStride:   4,
		Height:        img.Rect.Dy(),
		HeightStride:  img.Stride,
	}
}

// FromRGBA wraps img as a 4-channel byte buffer sharing img.Pix. The
// samples carry alpha-premultiplied values; viewing them as RGBA8 reads
// the raw bytes without un-premultiplying.
func FromRGBA(img *image.RGBA) Buffer[uint8] {
	return Buffer[uint8]{
		Samples:       img.Pix,
		Channels:      4,
		ChannelStride: 1,
		Width:         img.Rect.Dx(),
		WidthStride:   4,
		Height:        img.Rect.Dy(),
		HeightStride:  img.Stride,
	}
}

// NormalizeNRGBA copies src into a freshly allocated row-major packed
// buffer with straight alpha. It is the recovery path for layouts the
// view constructors reject: the returned buffer always satisfies
// IsNormal(NormalFormRowMajorPacked) and wraps the returned image, which
// keeps ownership of the pixels.
func NormalizeNRGBA(src image.Image) (Buffer[uint8], *image.NRGBA) {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	Logger().Debug("flatpix: normalize copy",
		"width", b.Dx(), "height", b.Dy())
	return FromNRGBA(dst), dst
}
