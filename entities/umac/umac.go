// Package umac is a dispatch-skeleton stand-in for the upper MAC entity.
// Channel allocation and random-access handling are Non-goals in this
// scope; it only logs what it receives as unimplemented.
package umac

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Umac is the stub upper-MAC entity, used for both BS and MS stacks.
type Umac struct {
	entities.BaseEntity
}

// New constructs a stub UMAC entity.
func New() *Umac {
	return &Umac{}
}

func (u *Umac) Entity() tetra.EntityID { return tetra.Umac }

func (u *Umac) RxPrim(_ *entities.MessageQueue, message saps.Msg) {
	metrics.UnimplementedLog("Umac", message.Sap.String())
	logrus.WithField("sap", message.Sap).Warn("umac: not implemented")
}
