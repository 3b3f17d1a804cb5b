// Package phy is a dispatch-skeleton stand-in for the physical layer.
// Modulation and SDR I/O are Non-goals in this scope; it only logs what
// it receives as unimplemented.
package phy

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Phy is the stub physical-layer entity, used for both BS and MS stacks.
type Phy struct {
	entities.BaseEntity
}

// New constructs a stub PHY entity.
func New() *Phy {
	return &Phy{}
}

func (p *Phy) Entity() tetra.EntityID { return tetra.Phy }

func (p *Phy) RxPrim(_ *entities.MessageQueue, message saps.Msg) {
	metrics.UnimplementedLog("Phy", message.Sap.String())
	logrus.WithField("sap", message.Sap).Warn("phy: not implemented")
}
