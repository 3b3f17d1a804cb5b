// Package saps defines the SAP primitive envelope and the concrete
// inter-layer primitive bodies that travel inside it.
package saps

import (
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Body is implemented by every concrete primitive payload. It carries no
// behavior of its own; it exists so SapMsg can hold a closed, tagged
// union the way a Rust enum would, via a Go interface and type switch at
// dispatch sites.
type Body interface {
	isSapBody()
}

// Msg is the envelope every primitive travels in between entities.
type Msg struct {
	Sap    tetra.SapID
	Src    tetra.EntityID
	Dest   tetra.EntityID
	DlTime tdma.Time
	Body   Body
}
