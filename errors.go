package flatpix

import "errors"

// Validation errors returned by AsView and AsViewMut. All of them are
// recoverable: the caller keeps the original buffer unchanged and may
// adjust the strides, copy into a normalized layout, or reject the input.
var (
	// ErrTooLarge is returned when the declared geometry reaches beyond
	// the backing storage, or when its extent cannot even be computed
	// without overflowing. No length can satisfy an overflowing layout,
	// so both cases reject the same way.
	ErrTooLarge = errors.New("flatpix: strided geometry exceeds buffer length")

	// ErrWrongColor is returned when the descriptor's channel count does
	// not match the channel arity of the requested pixel type. Lowering
	// the declared channel count (without touching the strides) is often
	// enough to fix this.
	ErrWrongColor = errors.New("flatpix: channel count does not match pixel type")
)

// NormalForm is a named degree of layout regularity. The forms build an
// ascending chain of strictness: every layout satisfying a stricter form
// also satisfies all looser ones.
type NormalForm uint8

const (
	// NormalFormUnaliased requires only that no two in-bounds coordinates
	// resolve to the same sample index.
	NormalFormUnaliased NormalForm = iota

	// NormalFormPixelPacked additionally requires one pixel's samples to
	// be contiguous (channel stride 1). This is the precondition for
	// handing out per-pixel sample slices.
	NormalFormPixelPacked

	// NormalFormRowMajorPacked additionally requires rows and columns to
	// be packed: the width stride equals the channel count and the height
	// stride equals width*channels, so the buffer holds exactly
	// channels*width*height samples in row-major order.
	NormalFormRowMajorPacked
)

// String returns a string representation of the normal form.
func (f NormalForm) String() string {
	switch f {
	case NormalFormUnaliased:
		return "Unaliased"
	case NormalFormPixelPacked:
		return "PixelPacked"
	case NormalFormRowMajorPacked:
		return "RowMajorPacked"
	default:
		return "Unknown"
	}
}

// Implies reports whether layouts satisfying f also satisfy weaker.
func (f NormalForm) Implies(weaker NormalForm) bool {
	return f >= weaker
}

// NormalFormError is returned by AsViewMut when the buffer layout does not
// satisfy a normal form the view requires. It is a comparable value, so
// errors.Is works against a constructed expectation:
//
//	if errors.Is(err, flatpix.NormalFormError{Required: flatpix.NormalFormUnaliased}) {
//		// copy into an owned row-major buffer instead
//	}
type NormalFormError struct {
	// Required is the loosest normal form that would have been accepted.
	Required NormalForm
}

// Error implements the error interface.
func (e NormalFormError) Error() string {
	return "flatpix: normal form required: " + e.Required.String()
}
