// Command flatpixdemo exercises flatpix strided buffer views: it renders
// a gradient test card through a mutable view, demonstrates zero-stride
// broadcasting, runs the result through a standard image filter, and
// reports GPU upload layouts.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/gogpu/flatpix"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	var (
		width  = flag.Int("width", 512, "test card width")
		height = flag.Int("height", 512, "test card height")
		radius = flag.Float64("blur", 3.5, "gaussian blur radius")
		output = flag.String("output", "flatpix.png", "output file")
		thumb  = flag.String("thumb", "", "optional thumbnail output file")
		input  = flag.String("input", "", "optional image to normalize and inspect")
	)
	flag.Parse()

	if *input != "" {
		if err := inspect(*input); err != nil {
			log.Fatalf("Failed to inspect %s: %v", *input, err)
		}
	}

	broadcastDemo()

	card, err := testCard(*width, *height)
	if err != nil {
		log.Fatalf("Failed to build test card: %v", err)
	}

	// Blur through the standard image interfaces; the result wraps back
	// into a view without copying.
	blurred := blur.Gaussian(card, *radius)
	final, err := flatpix.AsView[flatpix.RGBA8](flatpix.FromRGBA(blurred))
	if err != nil {
		log.Fatalf("Failed to view blurred image: %v", err)
	}
	if layout, extent, ok := final.UploadLayout(); ok {
		log.Printf("Upload-ready: format=%v extent=%dx%d bytesPerRow=%d rows=%d",
			final.TextureFormat(), extent.Width, extent.Height,
			layout.BytesPerRow, layout.RowsPerImage)
	}

	if err := imaging.Save(blurred, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)

	if *thumb != "" {
		small := imaging.Resize(blurred, 128, 0, imaging.Lanczos)
		if err := imaging.Save(small, *thumb); err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
		log.Printf("Thumbnail saved to %s", *thumb)
	}
}

// testCard paints a Lab-blended vertical gradient with a translucent
// disc composited on top, writing every pixel through a mutable view
// over the image's own pixel storage.
func testCard(w, h int) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	view, err := flatpix.AsViewMut[flatpix.RGBA8](flatpix.FromNRGBA(img))
	if err != nil {
		return nil, err
	}

	top, _ := colorful.Hex("#1e3a5f")
	bottom, _ := colorful.Hex("#f2a65a")
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		r, g, b := top.BlendLab(bottom, t).Clamped().RGB255()
		for x := 0; x < w; x++ {
			view.PutPixel(x, y, flatpix.RGBA8{R: r, G: g, B: b, A: 0xff})
		}
	}

	cx, cy := float64(w)/2, float64(h)/2
	disc := math.Min(cx, cy) * 0.6
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) < disc {
				view.BlendPixel(x, y, flatpix.RGBA8{R: 0xff, G: 0xff, B: 0xff, A: 0x60})
			}
		}
	}
	return img, nil
}

// broadcastDemo shows the zero-stride trick: one stored sample declared
// as a full three-channel image, every coordinate resolving to it.
func broadcastDemo() {
	buf := flatpix.Buffer[uint8]{
		Samples:  []uint8{0x7f},
		Channels: 3,
		Width:    64,
		Height:   64,
	}
	view, err := flatpix.AsView[flatpix.RGB8](buf)
	if err != nil {
		log.Fatalf("Failed to build broadcast view: %v", err)
	}
	px := view.GetPixel(63, 63)
	log.Printf("Broadcast: 1 sample serves %dx%d pixels, each %+v",
		view.Width(), view.Height(), px)
}

// inspect loads an image, shows how its layout classifies against the
// normal forms, and normalizes a strided sub-image into an upload-ready
// buffer.
func inspect(path string) error {
	src, err := imaging.Open(path)
	if err != nil {
		return err
	}
	norm := imaging.Clone(src)
	buf := flatpix.FromNRGBA(norm)
	log.Printf("Loaded %s: %dx%d, row-major packed: %v",
		path, buf.Width, buf.Height, buf.IsNormal(flatpix.NormalFormRowMajorPacked))

	// A sub-image keeps its parent's row stride, so it stays pixel-packed
	// but stops being row-major packed. Normalizing copies it into a
	// fresh packed layout.
	b := norm.Bounds()
	r := image.Rect(b.Min.X+b.Dx()/4, b.Min.Y+b.Dy()/4, b.Max.X-b.Dx()/4, b.Max.Y-b.Dy()/4)
	if r.Empty() {
		return nil
	}
	sub, ok := norm.SubImage(r).(*image.NRGBA)
	if !ok {
		return fmt.Errorf("sub-image of %s is not NRGBA", path)
	}
	subBuf := flatpix.FromNRGBA(sub)
	log.Printf("Sub-image %dx%d: pixel-packed: %v, row-major packed: %v",
		subBuf.Width, subBuf.Height,
		subBuf.IsNormal(flatpix.NormalFormPixelPacked),
		subBuf.IsNormal(flatpix.NormalFormRowMajorPacked))

	packed, _ := flatpix.NormalizeNRGBA(sub)
	view, err := flatpix.AsView[flatpix.RGBA8](packed)
	if err != nil {
		return fmt.Errorf("view %s: %w", path, err)
	}
	if layout, extent, ok := view.UploadLayout(); ok {
		log.Printf("Normalized sub-image upload-ready: %dx%d, %d bytes per row",
			extent.Width, extent.Height, layout.BytesPerRow)
	}
	return nil
}
