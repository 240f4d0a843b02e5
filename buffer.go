package flatpix

// Buffer describes a linear run of samples as a three-dimensional
// (x, y, channel) grid with caller-supplied strides. The linear index of
// the sample at (x, y, c) is x*WidthStride + y*HeightStride +
// c*ChannelStride.
//
// A Buffer is a plain description and enforces nothing on construction:
// the declared geometry may reach outside Samples, or map several
// coordinates onto the same index. Validity is established by the
// operations that consume the buffer, in particular by the view
// constructors AsView and AsViewMut.
//
// Zero strides are legal and useful: a single sample with all strides
// zero broadcasts itself across any declared width and height.
type Buffer[S Scalar] struct {
	// Samples is the underlying linear container holding sample values.
	Samples []S

	// Channels is the number of channels in one pixel.
	Channels uint8

	// ChannelStride is added to an index to reach the same sample in the
	// next channel.
	ChannelStride int

	// Width is the width of the described image.
	Width int

	// WidthStride is added to an index to reach the next sample in the
	// x direction.
	WidthStride int

	// Height is the height of the described image.
	Height int

	// HeightStride is added to an index to reach the next sample in the
	// y direction.
	HeightStride int
}

// StridesHWC returns the strides for matrix-like indexing, ordered
// (height, width, channel). For a row-major layout with grouped samples
// this triple is strictly decreasing.
func (b *Buffer[S]) StridesHWC() (height, width, channel int) {
	return b.HeightStride, b.WidthStride, b.ChannelStride
}

// Extents returns the extents ordered (height, width, channels).
//
// Note that width and height are swapped compared to 2D size methods
// such as Dimensions on a view. The order matches StridesHWC so the two
// can drive outer-to-inner nested iteration together.
func (b *Buffer[S]) Extents() (height, width, channels int) {
	return b.Height, b.Width, int(b.Channels)
}

// Ref returns a shallow copy sharing the backing slice, with all
// geometry fields unchanged.
func (b *Buffer[S]) Ref() Buffer[S] {
	return *b
}

// Clone returns a deep copy with freshly allocated samples.
func (b *Buffer[S]) Clone() Buffer[S] {
	out := *b
	out.Samples = make([]S, len(b.Samples))
	copy(out.Samples, b.Samples)
	return out
}

// AsSlice returns the backing slice.
func (b *Buffer[S]) AsSlice() []S {
	return b.Samples
}

// InBounds reports whether the coordinate lies inside the declared
// extents. Negative coordinates are out of bounds.
func (b *Buffer[S]) InBounds(x, y, c int) bool {
	return x >= 0 && x < b.Width &&
		y >= 0 && y < b.Height &&
		c >= 0 && c < int(b.Channels)
}

// Index resolves the linear index of the sample at (x, y, c).
//
// It reports false for a coordinate outside the declared extents and for
// any in-bounds coordinate whose index computation overflows int. Every
// multiplication and addition is overflow-checked; the result never
// wraps.
func (b *Buffer[S]) Index(x, y, c int) (int, bool) {
	if !b.InBounds(x, y, c) {
		return 0, false
	}
	idxC, ok := checkedMul(c, b.ChannelStride)
	if !ok {
		return 0, false
	}
	idxX, ok := checkedMul(x, b.WidthStride)
	if !ok {
		return 0, false
	}
	idxY, ok := checkedMul(y, b.HeightStride)
	if !ok {
		return 0, false
	}
	n, ok := checkedAdd(idxC, idxX)
	if !ok {
		return 0, false
	}
	return checkedAdd(n, idxY)
}

// InBoundsIndex computes the linear index of (x, y, c) with unchecked
// arithmetic.
//
// The precondition is that the coordinate has already been proven
// representable, typically because a prior MaxIndex computation
// succeeded. It is not enforced; callers must never pass unvalidated
// coordinates.
func (b *Buffer[S]) InBoundsIndex(x, y, c int) int {
	hs, ws, cs := b.StridesHWC()
	return y*hs + x*ws + c*cs
}

// MaxIndex returns the linear index of the last in-bounds coordinate,
// the highest index any view access can touch.
//
// It reports false when any extent is zero or the computation overflows;
// callers must then treat the buffer as requiring unbounded length. Use
// MinLength for a bound that handles empty geometry.
func (b *Buffer[S]) MaxIndex() (int, bool) {
	return b.Index(satDec(b.Width), satDec(b.Height), satDec(int(b.Channels)))
}

// MinLength returns the number of samples the backing slice must hold
// for every in-bounds coordinate to resolve inside it.
//
// An empty geometry (zero width, height or channels) needs no samples at
// all and yields (0, true). It reports false when the required length
// does not fit in an int, in which case no slice can satisfy the
// geometry.
func (b *Buffer[S]) MinLength() (int, bool) {
	if b.Width <= 0 || b.Height <= 0 || b.Channels == 0 {
		return 0, true
	}
	max, ok := b.MaxIndex()
	if !ok {
		return 0, false
	}
	return checkedAdd(max, 1)
}

// HasAliasedSamples reports whether two distinct in-bounds coordinates
// can resolve to the same linear index.
//
// The check is conservative: when a footprint computation overflows, or
// the geometry is otherwise ambiguous, aliasing is assumed. It never
// reports false for a layout that truly aliases. Without aliasing it is
// sound to hand out mutable access to two different samples at the same
// time.
func (b *Buffer[S]) HasAliasedSamples() bool {
	type axis struct {
		stride, count int
	}
	axes := [3]axis{
		{b.ChannelStride, int(b.Channels)},
		{b.WidthStride, b.Width},
		{b.HeightStride, b.Height},
	}

	for _, a := range axes {
		// An empty extent leaves no in-bounds coordinates to collide.
		if a.count <= 0 {
			return false
		}
		if a.stride < 0 {
			return true
		}
	}

	// Order the axes by ascending stride, counts breaking ties, then
	// require each axis's memory footprint to nest below the next
	// larger stride.
	less := func(p, q axis) bool {
		return p.stride < q.stride || (p.stride == q.stride && p.count < q.count)
	}
	if less(axes[1], axes[0]) {
		axes[0], axes[1] = axes[1], axes[0]
	}
	if less(axes[2], axes[1]) {
		axes[1], axes[2] = axes[2], axes[1]
	}
	if less(axes[1], axes[0]) {
		axes[0], axes[1] = axes[1], axes[0]
	}

	for _, a := range axes {
		// More than one step along a zero stride lands on the same
		// index every time.
		if a.stride == 0 && a.count > 1 {
			return true
		}
	}

	minLen, ok := checkedMul(axes[0].stride, axes[0].count)
	if !ok {
		return true
	}
	midLen, ok := checkedMul(axes[1].stride, axes[1].count)
	if !ok {
		return true
	}
	if _, ok := checkedMul(axes[2].stride, axes[2].count); !ok {
		return true
	}

	return minLen > axes[1].stride || midLen > axes[2].stride
}

// IsNormal reports whether the layout satisfies the given normal form
// and every form below it.
func (b *Buffer[S]) IsNormal(form NormalForm) bool {
	if b.HasAliasedSamples() {
		return false
	}
	if form.Implies(NormalFormPixelPacked) && b.ChannelStride != 1 {
		return false
	}
	if form.Implies(NormalFormRowMajorPacked) {
		if b.WidthStride != int(b.Channels) {
			return false
		}
		rowLen, ok := checkedMul(b.Width, int(b.Channels))
		if !ok || b.HeightStride != rowLen {
			return false
		}
	}
	return true
}
