package entities

import (
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Sink claims an identity normally owned by a real entity and captures
// every primitive delivered to it into an internal FIFO drainable by the
// test harness. Asserting on sinks is the primary test observation
// mechanism (spec.md §6).
type Sink struct {
	BaseEntity
	id    tetra.EntityID
	queue []saps.Msg
}

// NewSink creates a sink claiming the given identity.
func NewSink(id tetra.EntityID) *Sink {
	return &Sink{id: id}
}

func (s *Sink) Entity() tetra.EntityID { return s.id }

func (s *Sink) RxPrim(_ *MessageQueue, message saps.Msg) {
	s.queue = append(s.queue, message)
}

// TakeMsgQueue drains and returns every primitive captured so far.
func (s *Sink) TakeMsgQueue() []saps.Msg {
	msgs := s.queue
	s.queue = nil
	return msgs
}
