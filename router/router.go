// Package router implements the tick-driven message router: the
// single-threaded cooperative scheduler that owns every protocol entity,
// advances the shared TDMA clock, and delivers inter-entity primitives to
// a fixed point once per tick (spec.md §4.3).
package router

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/config"
	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// maxDeliveryIterations bounds the delivery fixed point defensively
// against a runaway loop during development (spec.md §9); the protocol
// itself guarantees termination under normal operation.
const maxDeliveryIterations = 100_000

// MessageRouter owns every registered entity for the lifetime of the
// stack and drives its tick loop.
type MessageRouter struct {
	config  config.SharedConfig
	dlTime  tdma.Time
	queue   *entities.MessageQueue
	order   []tetra.EntityID
	entity  map[tetra.EntityID]entities.TetraEntity
}

// New builds a router with no entities registered and the TDMA clock at
// its default epoch.
func New(cfg config.SharedConfig) *MessageRouter {
	return &MessageRouter{
		config: cfg,
		dlTime: tdma.Default(),
		queue:  entities.NewMessageQueue(),
		entity: make(map[tetra.EntityID]entities.TetraEntity),
	}
}

// RegisterEntity adds e to the registry, keyed by its stable identity.
// Insertion order is preserved for tick_start/tick_end phase ordering
// (spec.md §4.3); registering an identity a second time replaces the
// entry but keeps its original tick-phase position.
func (r *MessageRouter) RegisterEntity(e entities.TetraEntity) {
	id := e.Entity()
	if _, exists := r.entity[id]; !exists {
		r.order = append(r.order, id)
	}
	e.SetConfig(r.config)
	r.entity[id] = e
}

// GetEntity returns the entity registered for id, if any — the safe
// downcast facility's starting point (spec.md §4.4): callers type-assert
// the returned interface value to a concrete type (e.g. *entities.Sink).
func (r *MessageRouter) GetEntity(id tetra.EntityID) (entities.TetraEntity, bool) {
	e, ok := r.entity[id]
	return e, ok
}

// SetDlTime overwrites the router's current downlink TDMA time.
func (r *MessageRouter) SetDlTime(t tdma.Time) {
	r.dlTime = t
}

// DlTime returns the router's current downlink TDMA time.
func (r *MessageRouter) DlTime() tdma.Time {
	return r.dlTime
}

// SetConfig swaps the shared configuration handle and propagates it to
// every registered entity (spec.md §4.3).
func (r *MessageRouter) SetConfig(cfg config.SharedConfig) {
	r.config = cfg
	for _, e := range r.entity {
		e.SetConfig(cfg)
	}
}

// SubmitMessage enqueues a primitive for delivery on the next fixed
// point.
func (r *MessageRouter) SubmitMessage(msg saps.Msg) {
	r.queue.PushBack(msg)
}

// GetMsgQueueLen reports the number of primitives currently queued.
func (r *MessageRouter) GetMsgQueueLen() int {
	return r.queue.Len()
}

// DeliverAllMessages runs the delivery fixed point: pops the head and
// delivers it to the entity matching dest until the queue drains.
// Primitives whose dest has no registered entity are dropped with a
// warning (spec.md §4.3).
func (r *MessageRouter) DeliverAllMessages() {
	iterations := 0
	for {
		msg, ok := r.queue.PopFront()
		if !ok {
			return
		}
		iterations++
		if iterations > maxDeliveryIterations {
			logrus.WithField("dest", msg.Dest).Fatal("router: delivery fixed point exceeded iteration cap, aborting")
		}

		dest, ok := r.entity[msg.Dest]
		if !ok {
			metrics.PDUsDropped.Inc()
			logrus.WithFields(logrus.Fields{
				"dest": msg.Dest,
				"src":  msg.Src,
				"sap":  msg.Sap,
			}).Warn("router: primitive dropped, unknown destination")
			continue
		}
		dest.RxPrim(r.queue, msg)
	}
}

// TickAll invokes tick_start on every registered entity, in insertion
// order.
func (r *MessageRouter) TickAll() {
	for _, id := range r.order {
		r.entity[id].TickStart(r.queue, r.dlTime)
	}
}

// TickEnd invokes tick_end on every registered entity, in insertion
// order, returning true if any entity requested the loop stop (spec.md §9
// Open Question (b): any true stops).
func (r *MessageRouter) TickEnd() bool {
	stop := false
	for _, id := range r.order {
		if r.entity[id].TickEnd(r.queue, r.dlTime) {
			stop = true
		}
	}
	return stop
}

// RunStack runs the full three-phase tick loop: tick_start, the delivery
// fixed point (including any primitives tick_end enqueues — spec.md §4.3
// fixes same-tick delivery for determinism), then tick_end, advancing
// dlTime by one timeslot after each tick. It runs numTicks ticks, or
// forever if numTicks is nil, stopping early if any tick_end returns
// true.
func (r *MessageRouter) RunStack(numTicks *int) {
	ticks := 0
	for {
		r.TickAll()
		for r.queue.Len() > 0 {
			r.DeliverAllMessages()
		}
		metrics.QueueDepth.Set(float64(r.queue.Len()))

		stop := r.TickEnd()
		for r.queue.Len() > 0 {
			r.DeliverAllMessages()
		}
		metrics.QueueDepth.Set(float64(r.queue.Len()))

		r.dlTime = r.dlTime.AddTimeslots(1)
		metrics.TicksProcessed.Inc()

		ticks++
		if stop {
			return
		}
		if numTicks != nil && ticks >= *numTicks {
			return
		}
	}
}
