// Package tdma implements TETRA TDMA frame timing: the structured
// (hyperframe, multiframe, frame, timeslot) clock shared by every entity in
// the stack.
package tdma

import "fmt"

// Frame structure constants (ETSI EN 300 392-2 clause 9).
const (
	HyperframeCount = 64 // h in [0, 63]
	MultiframeCount = 60 // m in [1, 60]
	FrameCount      = 18 // f in [1, 18]
	TimeslotCount   = 4  // t in [1, 4]
)

// Time is the four-field TDMA clock tuple.
type Time struct {
	H int // hyperframe, [0, 63]
	M int // multiframe, [1, 60]
	F int // frame, [1, 18]
	T int // timeslot, [1, 4]
}

// Default returns the TDMA epoch (0, 1, 1, 1).
func Default() Time {
	return Time{H: 0, M: 1, F: 1, T: 1}
}

// AddTimeslots advances the time by k timeslots (k may be negative),
// carrying into frame, multiframe and hyperframe, with the hyperframe
// wrapping modulo HyperframeCount. Comparisons elsewhere in this package
// assume no wrap occurs within a single logical session.
func (t Time) AddTimeslots(k int) Time {
	// Flatten to a zero-based absolute timeslot count, add, then
	// re-normalize. Using int64 keeps this safe across the full
	// int32 range of k that TestableProperty (b) requires.
	total := flatten(t) + int64(k)

	const (
		slotsPerFrame      = int64(TimeslotCount)
		slotsPerMultiframe = slotsPerFrame * FrameCount
		slotsPerHyperframe = slotsPerMultiframe * MultiframeCount
	)

	total %= slotsPerHyperframe * HyperframeCount
	if total < 0 {
		total += slotsPerHyperframe * HyperframeCount
	}

	h := total / slotsPerHyperframe
	rem := total % slotsPerHyperframe
	m := rem / slotsPerMultiframe
	rem %= slotsPerMultiframe
	f := rem / slotsPerFrame
	rem %= slotsPerFrame
	ts := rem

	return Time{
		H: int(h),
		M: int(m) + 1,
		F: int(f) + 1,
		T: int(ts) + 1,
	}
}

// flatten returns the zero-based absolute timeslot index of t, ignoring
// hyperframe wrap (the caller re-normalizes modulo the full hyperframe
// span immediately after).
func flatten(t Time) int64 {
	const (
		slotsPerFrame      = int64(TimeslotCount)
		slotsPerMultiframe = slotsPerFrame * FrameCount
		slotsPerHyperframe = slotsPerMultiframe * MultiframeCount
	)
	return int64(t.H)*slotsPerHyperframe +
		int64(t.M-1)*slotsPerMultiframe +
		int64(t.F-1)*slotsPerFrame +
		int64(t.T-1)
}

// Compare returns -1, 0, or 1 as t is lexicographically before, equal to,
// or after other on (H, M, F, T). This is a total order assuming no
// hyperframe wrap within the comparison's logical session (§3).
func (t Time) Compare(other Time) int {
	a := flatten(t)
	b := flatten(other)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier than other.
func (t Time) Before(other Time) bool { return t.Compare(other) < 0 }

// After reports whether t is strictly later than other.
func (t Time) After(other Time) bool { return t.Compare(other) > 0 }

// String renders the time as "h/m/f/t", matching the corpus's debug-print
// convention for compound identifiers.
func (t Time) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", t.H, t.M, t.F, t.T)
}
