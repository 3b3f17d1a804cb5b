package config

import "sync"

// StackState is the small mutable state cell every entity may read, and
// only the owning stack may write, behind SharedConfig's RWMutex.
type StackState struct {
	CellLoadCA uint8
}

// SharedConfig bundles the immutable, validated StackConfig with a
// mutable StackState guarded by a single-writer/many-reader lock (spec.md
// §4.5, §5). It is cheap to copy: the pointer fields are shared, so every
// clone observes the same underlying state.
type SharedConfig struct {
	cfg   *StackConfig
	state *StackState
	mu    *sync.RWMutex
}

// NewSharedConfig validates cfg and wraps it with a fresh StackState.
// Validation failure panics: construction-time validation is fatal at
// startup only (spec.md §7).
func NewSharedConfig(cfg StackConfig) SharedConfig {
	return FromParts(cfg, StackState{})
}

// FromParts builds a SharedConfig from an already-assembled config and
// state pair, validating cfg as NewSharedConfig does.
func FromParts(cfg StackConfig, state StackState) SharedConfig {
	if err := cfg.Validate(); err != nil {
		panic("invalid stack configuration: " + err.Error())
	}
	c := cfg
	s := state
	return SharedConfig{cfg: &c, state: &s, mu: &sync.RWMutex{}}
}

// Config returns the immutable configuration. Safe to call from any
// goroutine; the value never changes after construction.
func (s SharedConfig) Config() *StackConfig {
	return s.cfg
}

// StateRead locks the state for reading and returns it with an unlock
// function the caller must invoke before returning control to the router
// or another entity (spec.md §5: never held across such a call).
func (s SharedConfig) StateRead() (*StackState, func()) {
	s.mu.RLock()
	return s.state, s.mu.RUnlock
}

// StateWrite locks the state for writing and returns it with an unlock
// function.
func (s SharedConfig) StateWrite() (*StackState, func()) {
	s.mu.Lock()
	return s.state, s.mu.Unlock
}
