package flatpix

import (
	"errors"
	"image"
	"testing"
)

// TestViewMutRowMajorWrites tests that writes through a row-major
// two-channel view land exactly where the strides say.
func TestViewMutRowMajorWrites(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 18),
		Channels: 2, ChannelStride: 1,
		Width: 3, WidthStride: 2,
		Height: 3, HeightStride: 6,
	}
	v, err := AsViewMut[GrayAlpha8](buf)
	if err != nil {
		t.Fatalf("AsViewMut: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			i := uint8(y*3 + x)
			v.PutPixel(x, y, GrayAlpha8{Y: 2 * i, A: 2*i + 1})
		}
	}
	for i, s := range buf.Samples {
		if s != uint8(i) {
			t.Fatalf("Samples[%d] = %d, want %d", i, s, i)
		}
	}
}

// TestAsViewMutAliased tests that aliasing rejects mutable construction
// even when the pixels themselves are packed.
func TestAsViewMutAliased(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 9),
		Channels: 1, ChannelStride: 1,
		Width: 3, WidthStride: 1,
		Height: 3, HeightStride: 1,
	}
	_, err := AsViewMut[Gray8](buf)
	if !errors.Is(err, NormalFormError{Required: NormalFormUnaliased}) {
		t.Errorf("aliased layout: err = %v, want NormalFormError requiring Unaliased", err)
	}
}

// TestAsViewMutUnpacked tests that planar storage, while alias-free, is
// rejected because pixels are not contiguous.
func TestAsViewMutUnpacked(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 18),
		Channels: 2, ChannelStride: 9,
		Width: 3, WidthStride: 1,
		Height: 3, HeightStride: 3,
	}
	_, err := AsViewMut[GrayAlpha8](buf)
	if !errors.Is(err, NormalFormError{Required: NormalFormPixelPacked}) {
		t.Errorf("planar layout: err = %v, want NormalFormError requiring PixelPacked", err)
	}
}

// TestAsViewMutValidationOrder tests that construction reports the
// first failing requirement of the fixed aliasing, packing, length
// sequence.
func TestAsViewMutValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		buf     Buffer[uint8]
		wantErr error
	}{
		{
			name: "aliased beats unpacked and short",
			buf: Buffer[uint8]{
				Samples:  make([]uint8, 1),
				Channels: 2, ChannelStride: 2,
				Width: 2, WidthStride: 2,
				Height: 1, HeightStride: 0,
			},
			wantErr: NormalFormError{Required: NormalFormUnaliased},
		},
		{
			name: "unpacked beats short",
			buf: Buffer[uint8]{
				Samples:  make([]uint8, 3),
				Channels: 2, ChannelStride: 2,
				Width: 2, WidthStride: 4,
				Height: 2, HeightStride: 8,
			},
			wantErr: NormalFormError{Required: NormalFormPixelPacked},
		},
		{
			name: "well formed but short",
			buf: Buffer[uint8]{
				Samples:  make([]uint8, 17),
				Channels: 2, ChannelStride: 1,
				Width: 3, WidthStride: 2,
				Height: 3, HeightStride: 6,
			},
			wantErr: ErrTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AsViewMut[GrayAlpha8](tt.buf)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AsViewMut: err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAsViewMutBroadcastRejected tests that zero-stride broadcasting,
// fine for reading, cannot back a mutable view.
func TestAsViewMutBroadcastRejected(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  []uint8{42},
		Channels: 3,
		Width:    100,
		Height:   100,
	}
	_, err := AsViewMut[RGB8](buf)
	if !errors.Is(err, NormalFormError{Required: NormalFormUnaliased}) {
		t.Errorf("broadcast layout: err = %v, want NormalFormError requiring Unaliased", err)
	}
}

// TestAsViewMutArityUnchecked tests that mutable construction accepts a
// channel count different from the pixel type's arity; accesses then
// touch the leading samples of each declared pixel slot.
func TestAsViewMutArityUnchecked(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 12),
		Channels: 3, ChannelStride: 1,
		Width: 2, WidthStride: 3,
		Height: 2, HeightStride: 6,
	}
	v, err := AsViewMut[GrayAlpha8](buf)
	if err != nil {
		t.Fatalf("AsViewMut with mismatched arity: %v", err)
	}
	px := v.GetPixelMut(1, 0)
	if len(px) != 2 {
		t.Fatalf("len(GetPixelMut) = %d, want the pixel type's 2", len(px))
	}
	px[0], px[1] = 7, 8
	if buf.Samples[3] != 7 || buf.Samples[4] != 8 || buf.Samples[5] != 0 {
		t.Errorf("Samples[3:6] = %v, want [7 8 0]", buf.Samples[3:6])
	}
}

// TestViewMutGetPixelMut tests the aliasing slice returned for a single
// pixel.
func TestViewMutGetPixelMut(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 18),
		Channels: 2, ChannelStride: 1,
		Width: 3, WidthStride: 2,
		Height: 3, HeightStride: 6,
	}
	v, err := AsViewMut[GrayAlpha8](buf)
	if err != nil {
		t.Fatalf("AsViewMut: %v", err)
	}

	px := v.GetPixelMut(1, 2)
	if len(px) != 2 || cap(px) != 2 {
		t.Fatalf("len, cap = %d, %d, want 2, 2", len(px), cap(px))
	}
	px[0] = 200
	px[1] = 100
	if buf.Samples[14] != 200 || buf.Samples[15] != 100 {
		t.Errorf("Samples[14:16] = %v, want [200 100]", buf.Samples[14:16])
	}

	// Appending must reallocate rather than spill into the next pixel.
	grown := append(px, 99)
	grown[0] = 1
	if buf.Samples[14] != 200 || buf.Samples[16] != 0 {
		t.Error("append through the pixel slice must not touch the buffer")
	}
}

// TestViewMutPutGetBlend tests the write, read back and blend cycle on
// an alpha-carrying pixel type.
func TestViewMutPutGetBlend(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 16),
		Channels: 4, ChannelStride: 1,
		Width: 4, WidthStride: 4,
		Height: 1, HeightStride: 16,
	}
	v, err := AsViewMut[RGBA8](buf)
	if err != nil {
		t.Fatalf("AsViewMut: %v", err)
	}

	dst := RGBA8{R: 0, G: 100, B: 255, A: 255}
	v.PutPixel(0, 0, dst)
	if got := v.GetPixel(0, 0); got != dst {
		t.Fatalf("GetPixel after PutPixel = %+v, want %+v", got, dst)
	}

	v.BlendPixel(0, 0, RGBA8{R: 255, G: 0, B: 0, A: 128})
	want := RGBA8{R: 128, G: 50, B: 127, A: 255}
	if got := v.GetPixel(0, 0); got != want {
		t.Errorf("GetPixel after BlendPixel = %+v, want %+v", got, want)
	}

	// An opaque source replaces outright.
	v.PutPixel(1, 0, RGBA8{R: 1, G: 2, B: 3, A: 255})
	v.BlendPixel(1, 0, RGBA8{R: 9, G: 8, B: 7, A: 255})
	opaque := RGBA8{R: 9, G: 8, B: 7, A: 255}
	if got := v.GetPixel(1, 0); got != opaque {
		t.Errorf("opaque blend = %+v, want %+v", got, opaque)
	}
}

// TestViewMutDegenerate tests that empty geometry still constructs a
// mutable view.
func TestViewMutDegenerate(t *testing.T) {
	buf := Buffer[uint8]{Channels: 1, ChannelStride: 1, Width: 0, Height: 5}
	v, err := AsViewMut[Gray8](buf)
	if err != nil {
		t.Fatalf("AsViewMut on empty geometry: %v", err)
	}
	if !v.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", v.Bounds())
	}
}

// TestViewMutPanics tests that every pixel accessor panics outside the
// view's dimensions.
func TestViewMutPanics(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 9),
		Channels: 1, ChannelStride: 1,
		Width: 3, WidthStride: 1,
		Height: 3, HeightStride: 3,
	}
	v, err := AsViewMut[Gray8](buf)
	if err != nil {
		t.Fatalf("AsViewMut: %v", err)
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{"GetPixel", func() { v.GetPixel(-1, 0) }},
		{"GetPixelMut", func() { v.GetPixelMut(0, 3) }},
		{"PutPixel", func() { v.PutPixel(3, 0, Gray8{}) }},
		{"BlendPixel", func() { v.BlendPixel(0, -1, Gray8{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s outside bounds should panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

// TestViewMutAccessors tests the read-side accessors shared with the
// immutable view.
func TestViewMutAccessors(t *testing.T) {
	buf := Buffer[uint8]{
		Samples:  make([]uint8, 24),
		Channels: 4, ChannelStride: 1,
		Width: 3, WidthStride: 4,
		Height: 2, HeightStride: 12,
	}
	v, err := AsViewMut[RGBA8](buf)
	if err != nil {
		t.Fatalf("AsViewMut: %v", err)
	}

	if w, h := v.Dimensions(); w != 3 || h != 2 {
		t.Errorf("Dimensions() = (%d, %d), want (3, 2)", w, h)
	}
	if got, want := v.Bounds(), image.Rect(0, 0, 3, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if !v.InBounds(2, 1) || v.InBounds(3, 0) {
		t.Error("InBounds disagrees with the 3x2 dimensions")
	}
	if v.Inner() != v {
		t.Error("Inner() should return the view itself")
	}
	v.PutPixel(2, 1, RGBA8{R: 5, G: 6, B: 7, A: 8})
	flat := v.Flat()
	if &flat.Samples[0] != &buf.Samples[0] {
		t.Error("Flat() should share the backing slice")
	}
	if flat.Samples[20] != 5 || flat.Samples[23] != 8 {
		t.Errorf("Samples[20:24] = %v, want the written pixel", flat.Samples[20:24])
	}
}
