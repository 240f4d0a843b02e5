package flatpix

import (
	"image/color"
	"math"
)

// Concrete pixel types for the common sample layouts. Each type carries
// one exported field per channel in sample order, satisfies the Pixel
// capability over its scalar type, and converts to the matching standard
// library color. Alpha is straight (not premultiplied) everywhere; types
// with an alpha channel composite source-over on Blend, types without one
// replace.

// blend8 composites one straight-alpha 8-bit channel pair. sa, da and
// outA are the source, destination and output alpha in [0, 1].
func blend8(s, d uint8, sa, da, outA float64) uint8 {
	v := (float64(s)/255*sa + float64(d)/255*da*(1-sa)) / outA
	return uint8(math.Round(v * 255))
}

// blend16 is blend8 for 16-bit channels.
func blend16(s, d uint16, sa, da, outA float64) uint16 {
	v := (float64(s)/65535*sa + float64(d)/65535*da*(1-sa)) / outA
	return uint16(math.Round(v * 65535))
}

// Gray8 is an 8-bit grayscale pixel (1 channel).
type Gray8 struct {
	Y uint8
}

// Channels reports the channel arity (1).
func (Gray8) Channels() uint8 { return 1 }

// FromSamples builds a Gray8 from src[0]. The receiver is ignored.
func (Gray8) FromSamples(src []uint8) Gray8 { return Gray8{Y: src[0]} }

// StoreSamples writes the pixel's sample into dst[0].
func (p Gray8) StoreSamples(dst []uint8) { dst[0] = p.Y }

// Blend replaces the receiver: grayscale has no alpha to composite with.
func (Gray8) Blend(src Gray8) Gray8 { return src }

// Color converts to color.Gray.
func (p Gray8) Color() color.Color { return color.Gray{Y: p.Y} }

// ColorModel returns color.GrayModel.
func (Gray8) ColorModel() color.Model { return color.GrayModel }

// Gray16 is a 16-bit grayscale pixel (1 channel).
type Gray16 struct {
	Y uint16
}

// Channels reports the channel arity (1).
func (Gray16) Channels() uint8 { return 1 }

// FromSamples builds a Gray16 from src[0]. The receiver is ignored.
func (Gray16) FromSamples(src []uint16) Gray16 { return Gray16{Y: src[0]} }

// StoreSamples writes the pixel's sample into dst[0].
func (p Gray16) StoreSamples(dst []uint16) { dst[0] = p.Y }

// Blend replaces the receiver.
func (Gray16) Blend(src Gray16) Gray16 { return src }

// Color converts to color.Gray16.
func (p Gray16) Color() color.Color { return color.Gray16{Y: p.Y} }

// ColorModel returns color.Gray16Model.
func (Gray16) ColorModel() color.Model { return color.Gray16Model }

// GrayAlpha8 is an 8-bit grayscale pixel with alpha (2 channels, Y then A).
type GrayAlpha8 struct {
	Y, A uint8
}

// Channels reports the channel arity (2).
func (GrayAlpha8) Channels() uint8 { return 2 }

// FromSamples builds a GrayAlpha8 from src[0:2]. The receiver is ignored.
func (GrayAlpha8) FromSamples(src []uint8) GrayAlpha8 {
	return GrayAlpha8{Y: src[0], A: src[1]}
}

// StoreSamples writes the pixel's samples into dst[0:2].
func (p GrayAlpha8) StoreSamples(dst []uint8) {
	dst[0] = p.Y
	dst[1] = p.A
}

// Blend composites src over the receiver with straight alpha.
func (p GrayAlpha8) Blend(src GrayAlpha8) GrayAlpha8 {
	if src.A == 0xff {
		return src
	}
	if src.A == 0 {
		return p
	}
	sa := float64(src.A) / 255
	da := float64(p.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		return GrayAlpha8{}
	}
	return GrayAlpha8{
		Y: blend8(src.Y, p.Y, sa, da, outA),
		A: uint8(math.Round(outA * 255)),
	}
}

// Color converts to color.NRGBA with equal RGB components.
func (p GrayAlpha8) Color() color.Color {
	return color.NRGBA{R: p.Y, G: p.Y, B: p.Y, A: p.A}
}

// ColorModel returns color.NRGBAModel.
func (GrayAlpha8) ColorModel() color.Model { return color.NRGBAModel }

// GrayAlpha16 is a 16-bit grayscale pixel with alpha (2 channels, Y then A).
type GrayAlpha16 struct {
	Y, A uint16
}

// Channels reports the channel arity (2).
func (GrayAlpha16) Channels() uint8 { return 2 }

// FromSamples builds a GrayAlpha16 from src[0:2]. The receiver is ignored.
func (GrayAlpha16) FromSamples(src []uint16) GrayAlpha16 {
	return GrayAlpha16{Y: src[0], A: src[1]}
}

// StoreSamples writes the pixel's samples into dst[0:2].
func (p GrayAlpha16) StoreSamples(dst []uint16) {
	dst[0] = p.Y
	dst[1] = p.A
}

// Blend composites src over the receiver with straight alpha.
func (p GrayAlpha16) Blend(src GrayAlpha16) GrayAlpha16 {
	if src.A == 0xffff {
		return src
	}
	if src.A == 0 {
		return p
	}
	sa := float64(src.A) / 65535
	da := float64(p.A) / 65535
	outA := sa + da*(1-sa)
	if outA == 0 {
		return GrayAlpha16{}
	}
	return GrayAlpha16{
		Y: blend16(src.Y, p.Y, sa, da, outA),
		A: uint16(math.Round(outA * 65535)),
	}
}

// Color converts to color.NRGBA64 with equal RGB components.
func (p GrayAlpha16) Color() color.Color {
	return color.NRGBA64{R: p.Y, G: p.Y, B: p.Y, A: p.A}
}

// ColorModel returns color.NRGBA64Model.
func (GrayAlpha16) ColorModel() color.Model { return color.NRGBA64Model }

// RGB8 is an 8-bit RGB pixel without alpha (3 channels).
type RGB8 struct {
	R, G, B uint8
}

// Channels reports the channel arity (3).
func (RGB8) Channels() uint8 { return 3 }

// FromSamples builds an RGB8 from src[0:3]. The receiver is ignored.
func (RGB8) FromSamples(src []uint8) RGB8 {
	return RGB8{R: src[0], G: src[1], B: src[2]}
}

// StoreSamples writes the pixel's samples into dst[0:3].
func (p RGB8) StoreSamples(dst []uint8) {
	dst[0] = p.R
	dst[1] = p.G
	dst[2] = p.B
}

// Blend replaces the receiver.
func (RGB8) Blend(src RGB8) RGB8 { return src }

// Color converts to an opaque color.NRGBA.
func (p RGB8) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// ColorModel returns color.NRGBAModel.
func (RGB8) ColorModel() color.Model { return color.NRGBAModel }

// RGB16 is a 16-bit RGB pixel without alpha (3 channels).
type RGB16 struct {
	R, G, B uint16
}

// Channels reports the channel arity (3).
func (RGB16) Channels() uint8 { return 3 }

// FromSamples builds an RGB16 from src[0:3]. The receiver is ignored.
func (RGB16) FromSamples(src []uint16) RGB16 {
	return RGB16{R: src[0], G: src[1], B: src[2]}
}

// StoreSamples writes the pixel's samples into dst[0:3].
func (p RGB16) StoreSamples(dst []uint16) {
	dst[0] = p.R
	dst[1] = p.G
	dst[2] = p.B
}

// Blend replaces the receiver.
func (RGB16) Blend(src RGB16) RGB16 { return src }

// Color converts to an opaque color.NRGBA64.
func (p RGB16) Color() color.Color {
	return color.NRGBA64{R: p.R, G: p.G, B: p.B, A: 0xffff}
}

// ColorModel returns color.NRGBA64Model.
func (RGB16) ColorModel() color.Model { return color.NRGBA64Model }

// RGBA8 is an 8-bit RGBA pixel with straight alpha (4 channels).
type RGBA8 struct {
	R, G, B, A uint8
}

// Channels reports the channel arity (4).
func (RGBA8) Channels() uint8 { return 4 }

// FromSamples builds an RGBA8 from src[0:4]. The receiver is ignored.
func (RGBA8) FromSamples(src []uint8) RGBA8 {
	return RGBA8{R: src[0], G: src[1], B: src[2], A: src[3]}
}

// StoreSamples writes the pixel's samples into dst[0:4].
func (p RGBA8) StoreSamples(dst []uint8) {
	dst[0] = p.R
	dst[1] = p.G
	dst[2] = p.B
	dst[3] = p.A
}

// Blend composites src over the receiver with straight alpha.
func (p RGBA8) Blend(src RGBA8) RGBA8 {
	if src.A == 0xff {
		return src
	}
	if src.A == 0 {
		return p
	}
	sa := float64(src.A) / 255
	da := float64(p.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		return RGBA8{}
	}
	return RGBA8{
		R: blend8(src.R, p.R, sa, da, outA),
		G: blend8(src.G, p.G, sa, da, outA),
		B: blend8(src.B, p.B, sa, da, outA),
		A: uint8(math.Round(outA * 255)),
	}
}

// Color converts to color.NRGBA.
func (p RGBA8) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// ColorModel returns color.NRGBAModel.
func (RGBA8) ColorModel() color.Model { return color.NRGBAModel }

// RGBA16 is a 16-bit RGBA pixel with straight alpha (4 channels).
type RGBA16 struct {
	R, G, B, A uint16
}

// Channels reports the channel arity (4).
func (RGBA16) Channels() uint8 { return 4 }

// FromSamples builds an RGBA16 from src[0:4]. The receiver is ignored.
func (RGBA16) FromSamples(src []uint16) RGBA16 {
	return RGBA16{R: src[0], G: src[1], B: src[2], A: src[3]}
}

// StoreSamples writes the pixel's samples into dst[0:4].
func (p RGBA16) StoreSamples(dst []uint16) {
	dst[0] = p.R
	dst[1] = p.G
	dst[2] = p.B
	dst[3] = p.A
}

// Blend composites src over the receiver with straight alpha.
func (p RGBA16) Blend(src RGBA16) RGBA16 {
	if src.A == 0xffff {
		return src
	}
	if src.A == 0 {
		return p
	}
	sa := float64(src.A) / 65535
	da := float64(p.A) / 65535
	outA := sa + da*(1-sa)
	if outA == 0 {
		return RGBA16{}
	}
	return RGBA16{
		R: blend16(src.R, p.R, sa, da, outA),
		G: blend16(src.G, p.G, sa, da, outA),
		B: blend16(src.B, p.B, sa, da, outA),
		A: uint16(math.Round(outA * 65535)),
	}
}

// Color converts to color.NRGBA64.
func (p RGBA16) Color() color.Color {
	return color.NRGBA64{R: p.R, G: p.G, B: p.B, A: p.A}
}

// ColorModel returns color.NRGBA64Model.
func (RGBA16) ColorModel() color.Model { return color.NRGBA64Model }

// BGRA8 is an 8-bit BGRA pixel with straight alpha (4 channels, the
// sample order used by Windows surfaces and most GPU swapchains).
type BGRA8 struct {
	B, G, R, A uint8
}

// Channels reports the channel arity (4).
func (BGRA8) Channels() uint8 { return 4 }

// FromSamples builds a BGRA8 from src[0:4]. The receiver is ignored.
func (BGRA8) FromSamples(src []uint8) BGRA8 {
	return BGRA8{B: src[0], G: src[1], R: src[2], A: src[3]}
}

// StoreSamples writes the pixel's samples into dst[0:4].
func (p BGRA8) StoreSamples(dst []uint8) {
	dst[0] = p.B
	dst[1] = p.G
	dst[2] = p.R
	dst[3] = p.A
}

// Blend composites src over the receiver with straight alpha.
func (p BGRA8) Blend(src BGRA8) BGRA8 {
	if src.A == 0xff {
		return src
	}
	if src.A == 0 {
		return p
	}
	sa := float64(src.A) / 255
	da := float64(p.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		return BGRA8{}
	}
	return BGRA8{
		B: blend8(src.B, p.B, sa, da, outA),
		G: blend8(src.G, p.G, sa, da, outA),
		R: blend8(src.R, p.R, sa, da, outA),
		A: uint8(math.Round(outA * 255)),
	}
}

// Color converts to color.NRGBA.
func (p BGRA8) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// ColorModel returns color.NRGBAModel.
func (BGRA8) ColorModel() color.Model { return color.NRGBAModel }
