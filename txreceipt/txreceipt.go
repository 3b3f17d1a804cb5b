// Package txreceipt implements the shared transmit-progress tracker that
// lets an originating entity observe whether MAC has actually put its PDU
// on the air, without blocking or polling the stack.
package txreceipt

import (
	"fmt"
	"sync/atomic"
)

// State is one of the legal transmit-progress states a PDU copy can be in.
type State uint32

const (
	// Pending: queued but not yet handed to the air.
	Pending State = iota
	// Discarded: MAC dropped the PDU (e.g. too busy). Final.
	Discarded
	// Transmitted: MAC has sent the PDU over the air. Final unless the
	// receipt expects an acknowledgement.
	Transmitted
	// Lost: transmitted but no acknowledgement arrived in time. Final.
	Lost
	// Acknowledged: the remote side acknowledged receipt. Final.
	Acknowledged
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Discarded:
		return "Discarded"
	case Transmitted:
		return "Transmitted"
	case Lost:
		return "Lost"
	case Acknowledged:
		return "Acknowledged"
	default:
		return fmt.Sprintf("State(%d)", uint32(s))
	}
}

// cell is the shared heap allocation backing one (Receipt, Reporter) pair.
// It outlives either half individually; Go's GC reclaims it once both
// drop out of scope, mirroring the Arc<AtomicU8> of the source state
// machine.
type cell struct {
	state      atomic.Uint32
	expectsAck bool
}

// Receipt is retained by the originating entity to query the fate of a
// PDU copy it handed down the stack.
type Receipt struct {
	c *cell
}

// Reporter travels with the PDU copy down through MAC and LLC; those
// layers call its mark_* methods to drive the state machine the paired
// Receipt observes.
type Reporter struct {
	c *cell
}

// New creates a linked (Receipt, Reporter) pair in state Pending.
// expectsAck gates whether Transmitted is a final state (false) or must
// progress to Acknowledged/Lost (true).
func New(expectsAck bool) (Receipt, Reporter) {
	c := &cell{expectsAck: expectsAck}
	c.state.Store(uint32(Pending))
	return Receipt{c: c}, Reporter{c: c}
}

// GetState returns the current state.
func (r Receipt) GetState() State {
	return State(r.c.state.Load())
}

// IsTransmitted is true once the PDU has left MAC (or progressed further).
func (r Receipt) IsTransmitted() bool {
	return r.c.state.Load() >= uint32(Transmitted)
}

// IsAcknowledged is true once the remote side has acknowledged receipt.
func (r Receipt) IsAcknowledged() bool {
	return r.c.state.Load() >= uint32(Acknowledged)
}

// IsInFinalState reports whether no further transition is legal.
func (r Receipt) IsInFinalState() bool {
	return isFinal(State(r.c.state.Load()), r.c.expectsAck)
}

// GetState returns the current state, as observed by the reporter half.
func (r Reporter) GetState() State {
	return State(r.c.state.Load())
}

// Clone returns an additional handle sharing the same underlying cell;
// any one clone may perform a mark_* transition.
func (r Reporter) Clone() Reporter {
	return Reporter{c: r.c}
}

func isFinal(s State, expectsAck bool) bool {
	switch s {
	case Pending:
		return false
	case Discarded, Lost, Acknowledged:
		return true
	case Transmitted:
		return !expectsAck
	default:
		return true
	}
}

func (r Reporter) mark(from, to State) {
	if !r.c.state.CompareAndSwap(uint32(from), uint32(to)) {
		panic(fmt.Sprintf("txreceipt: invalid transition %s -> %s (actual state: %s)",
			from, to, State(r.c.state.Load())))
	}
}

// MarkTransmitted: Pending -> Transmitted. MAC has sent the PDU over the
// air. Panics if the receipt is not Pending (a caller programming fault).
func (r Reporter) MarkTransmitted() {
	r.mark(Pending, Transmitted)
}

// MarkDiscarded: Pending -> Discarded. MAC was too busy to transmit.
// Panics if the receipt is not Pending.
func (r Reporter) MarkDiscarded() {
	r.mark(Pending, Discarded)
}

// MarkAcknowledged: Transmitted -> Acknowledged. LLC received an ACK from
// the remote side. Requires expectsAck; panics otherwise, and panics if
// the receipt is not Transmitted.
func (r Reporter) MarkAcknowledged() {
	if !r.c.expectsAck {
		panic("txreceipt: cannot mark acknowledged a message that does not expect an ACK")
	}
	r.mark(Transmitted, Acknowledged)
}

// MarkLost: Transmitted -> Lost. LLC did not receive an ACK within the
// expected window. Requires expectsAck; panics otherwise, and panics if
// the receipt is not Transmitted.
func (r Reporter) MarkLost() {
	if !r.c.expectsAck {
		panic("txreceipt: cannot mark lost a message that does not expect an ACK")
	}
	r.mark(Transmitted, Lost)
}
