// Package entities defines the uniform capability contract every
// protocol-layer entity implements, and the primitive queue entities use
// to talk to each other through the router.
package entities

import (
	"github.com/proxiboi69/tetra-bluestation/config"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// MessageQueue is the FIFO of primitives the router lends to one entity
// at a time during primitive delivery (spec.md §3, §4.3).
type MessageQueue struct {
	items []saps.Msg
}

// NewMessageQueue returns an empty queue.
func NewMessageQueue() *MessageQueue {
	return &MessageQueue{}
}

// PushBack enqueues a primitive at the tail.
func (q *MessageQueue) PushBack(msg saps.Msg) {
	q.items = append(q.items, msg)
}

// PopFront dequeues the head primitive, reporting whether one was
// available.
func (q *MessageQueue) PopFront() (saps.Msg, bool) {
	if len(q.items) == 0 {
		return saps.Msg{}, false
	}
	msg := q.items[0]
	q.items = q.items[1:]
	return msg, true
}

// Len reports the number of queued primitives.
func (q *MessageQueue) Len() int {
	return len(q.items)
}

// TetraEntity is the uniform capability set every protocol-layer entity
// implements (spec.md §4.4, §9). A closed universe of entity kinds is
// known at compile time, but the router treats them uniformly through
// this interface rather than an inheritance hierarchy; BS and MS variants
// of the same layer are independent types implementing it, not
// subclasses.
type TetraEntity interface {
	// Entity returns the entity's stable identity.
	Entity() tetra.EntityID

	// RxPrim delivers one primitive. The entity owns message for the
	// call and must not block or suspend.
	RxPrim(queue *MessageQueue, message saps.Msg)

	// TickStart and TickEnd run the entity's two-phase turn once per
	// timeslot. TickEnd's bool return signals the router to stop
	// (true from any entity stops the loop — spec.md §9 Open Question
	// (b)).
	TickStart(queue *MessageQueue, dlTime tdma.Time)
	TickEnd(queue *MessageQueue, dlTime tdma.Time) bool

	// SetConfig replaces the shared configuration handle.
	SetConfig(cfg config.SharedConfig)
}

// BaseEntity provides the default no-op TickStart/TickEnd and SetConfig
// storage that most entities share, mirroring the Rust trait's default
// method bodies. Concrete entities embed it and override what they need.
type BaseEntity struct {
	Config config.SharedConfig
}

func (b *BaseEntity) TickStart(_ *MessageQueue, _ tdma.Time) {}

func (b *BaseEntity) TickEnd(_ *MessageQueue, _ tdma.Time) bool { return false }

func (b *BaseEntity) SetConfig(cfg config.SharedConfig) { b.Config = cfg }
