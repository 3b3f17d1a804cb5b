// Package componenttest is reusable scaffolding for entity and
// integration tests: a one-call way to assemble a router with a chosen
// subset of entities, optionally backed by sinks that capture every
// primitive addressed to an identity for later assertion (spec.md §6).
package componenttest

import (
	"fmt"

	"github.com/proxiboi69/tetra-bluestation/config"
	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/entities/cmce"
	"github.com/proxiboi69/tetra-bluestation/entities/llc"
	"github.com/proxiboi69/tetra-bluestation/entities/lmac"
	"github.com/proxiboi69/tetra-bluestation/entities/mle"
	"github.com/proxiboi69/tetra-bluestation/entities/mm"
	"github.com/proxiboi69/tetra-bluestation/entities/phy"
	"github.com/proxiboi69/tetra-bluestation/entities/sndcp"
	"github.com/proxiboi69/tetra-bluestation/entities/umac"
	"github.com/proxiboi69/tetra-bluestation/router"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// ComponentTest bundles a router with its shared config and whatever
// sinks the test registered, for easy assembly and teardown-free reuse
// across test cases.
type ComponentTest struct {
	Config config.SharedConfig
	Router *router.MessageRouter

	sinks []tetra.EntityID
}

// DefaultTestConfig returns a minimal, valid configuration for mode,
// suitable as a starting point for component tests: PHY backend None
// (valid for tests only, per StackConfig.Validate), a placeholder MCC/MNC.
func DefaultTestConfig(mode config.StackMode) config.StackConfig {
	cfg := config.NewStackConfig(mode, 1, 1)
	cfg.PhyIO.Backend = config.PhyNone
	return cfg
}

// FromConfig builds a ComponentTest from an already-assembled config,
// starting the router's downlink clock at startDlTime (the TDMA epoch
// if nil).
func FromConfig(cfg config.StackConfig, startDlTime *tdma.Time) *ComponentTest {
	shared := config.NewSharedConfig(cfg)
	r := router.New(shared)
	if startDlTime != nil {
		r.SetDlTime(*startDlTime)
	}
	return &ComponentTest{Config: shared, Router: r}
}

// New builds a ComponentTest with DefaultTestConfig(mode).
func New(mode config.StackMode, startDlTime *tdma.Time) *ComponentTest {
	return FromConfig(DefaultTestConfig(mode), startDlTime)
}

// RegisterEntity adds an already-constructed entity to the router.
func (c *ComponentTest) RegisterEntity(e entities.TetraEntity) {
	c.Router.RegisterEntity(e)
}

// PopulateEntities registers the requested components (built as the
// BS or MS variant according to the config's stack mode) and the
// requested sinks, in one call.
func (c *ComponentTest) PopulateEntities(components []tetra.EntityID, sinks []tetra.EntityID) {
	switch c.Config.Config().StackMode {
	case config.ModeBs:
		c.createComponentsBs(components)
	case config.ModeMs:
		c.createComponentsMs(components)
	default:
		panic("componenttest: only Bs and Ms stack modes are supported")
	}
	c.createSinks(sinks)
}

func (c *ComponentTest) createComponentsBs(components []tetra.EntityID) {
	for _, id := range components {
		switch id {
		case tetra.Lmac:
			c.RegisterEntity(lmac.New())
		case tetra.Umac:
			c.RegisterEntity(umac.New())
		case tetra.Llc:
			c.RegisterEntity(llc.New())
		case tetra.Mle:
			c.RegisterEntity(mle.New())
		case tetra.Mm:
			c.RegisterEntity(mm.New())
		case tetra.Sndcp:
			c.RegisterEntity(sndcp.New())
		case tetra.Cmce:
			c.RegisterEntity(cmce.New())
		default:
			panic(fmt.Sprintf("componenttest: component not implemented: %v", id))
		}
	}
}

func (c *ComponentTest) createComponentsMs(components []tetra.EntityID) {
	for _, id := range components {
		switch id {
		case tetra.Lmac:
			c.RegisterEntity(lmac.New())
		case tetra.Umac:
			c.RegisterEntity(umac.New())
		case tetra.Llc:
			c.RegisterEntity(llc.New())
		case tetra.Mle:
			c.RegisterEntity(mle.New())
		case tetra.Mm:
			c.RegisterEntity(mm.NewMs())
		case tetra.Sndcp:
			c.RegisterEntity(sndcp.New())
		case tetra.Cmce:
			c.RegisterEntity(cmce.NewMs())
		default:
			panic(fmt.Sprintf("componenttest: component not implemented: %v", id))
		}
	}
}

func (c *ComponentTest) createSinks(ids []tetra.EntityID) {
	for _, id := range ids {
		for _, existing := range c.sinks {
			if existing == id {
				panic(fmt.Sprintf("componenttest: sink already exists: %v", id))
			}
		}
		if _, ok := c.Router.GetEntity(id); ok {
			panic(fmt.Sprintf("componenttest: sink already registered as entity: %v", id))
		}
		c.sinks = append(c.sinks, id)
		c.RegisterEntity(entities.NewSink(id))
	}
}

// RunStack runs the router's tick loop for numTicks ticks, or forever if
// nil.
func (c *ComponentTest) RunStack(numTicks *int) {
	c.Router.RunStack(numTicks)
}

// SubmitMessage enqueues a primitive for the next delivery fixed point.
func (c *ComponentTest) SubmitMessage(msg saps.Msg) {
	c.Router.SubmitMessage(msg)
}

// DeliverAllMessages runs the delivery fixed point once.
func (c *ComponentTest) DeliverAllMessages() {
	c.Router.DeliverAllMessages()
}

// DumpSinks drains and returns every primitive captured by every
// registered sink, in sink-registration order.
func (c *ComponentTest) DumpSinks() []saps.Msg {
	var msgs []saps.Msg
	for _, id := range c.sinks {
		e, ok := c.Router.GetEntity(id)
		if !ok {
			continue
		}
		if sink, ok := e.(*entities.Sink); ok {
			msgs = append(msgs, sink.TakeMsgQueue()...)
		}
	}
	return msgs
}
