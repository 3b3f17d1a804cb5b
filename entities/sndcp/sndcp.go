// Package sndcp is a dispatch-skeleton stand-in for the Sub-Network
// Dependent Convergence Protocol entity. Packet-data convergence is a
// Non-goal in this scope; it only logs what it receives as unimplemented.
package sndcp

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Sndcp is the stub SNDCP entity, used for both BS and MS stacks.
type Sndcp struct {
	entities.BaseEntity
}

// New constructs a stub SNDCP entity.
func New() *Sndcp {
	return &Sndcp{}
}

func (s *Sndcp) Entity() tetra.EntityID { return tetra.Sndcp }

func (s *Sndcp) RxPrim(_ *entities.MessageQueue, message saps.Msg) {
	if message.Sap != tetra.TlpdSap {
		panic("sndcp.Sndcp: SAP mismatch, only TlpdSap is permitted")
	}
	metrics.UnimplementedLog("Sndcp", message.Sap.String())
	logrus.WithField("sap", message.Sap).Warn("sndcp: not implemented")
}
