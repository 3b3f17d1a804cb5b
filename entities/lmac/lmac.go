// Package lmac is a dispatch-skeleton stand-in for the lower MAC entity.
// Air-interface scheduling is a Non-goal in this scope; it only logs
// what it receives as unimplemented.
package lmac

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Lmac is the stub lower-MAC entity, used for both BS and MS stacks.
type Lmac struct {
	entities.BaseEntity
}

// New constructs a stub LMAC entity.
func New() *Lmac {
	return &Lmac{}
}

func (l *Lmac) Entity() tetra.EntityID { return tetra.Lmac }

func (l *Lmac) RxPrim(_ *entities.MessageQueue, message saps.Msg) {
	metrics.UnimplementedLog("Lmac", message.Sap.String())
	logrus.WithField("sap", message.Sap).Warn("lmac: not implemented")
}
