// Package llc is a dispatch-skeleton stand-in for the Logical Link
// Control entity. It accepts primitives addressed to it and logs them as
// unimplemented; LLC's framing and retransmission behavior is a Non-goal
// in this scope.
package llc

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Llc is the stub Logical Link Control entity, used for both BS and MS
// stacks.
type Llc struct {
	entities.BaseEntity
}

// New constructs a stub LLC entity.
func New() *Llc {
	return &Llc{}
}

func (l *Llc) Entity() tetra.EntityID { return tetra.Llc }

func (l *Llc) RxPrim(_ *entities.MessageQueue, message saps.Msg) {
	metrics.UnimplementedLog("Llc", message.Sap.String())
	logrus.WithField("sap", message.Sap).Warn("llc: not implemented")
}
