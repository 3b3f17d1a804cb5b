// Package mle is a dispatch-skeleton stand-in for the Mobile Link Entity.
// It accepts primitives on LcmcSap and LmmSap from its upper-layer
// clients (CMCE, MM) and logs them as unimplemented; MLE's own routing
// and mobility behavior is a Non-goal in this scope.
package mle

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Mle is the stub Mobile Link Entity, used for both BS and MS stacks.
type Mle struct {
	entities.BaseEntity
}

// New constructs a stub MLE entity.
func New() *Mle {
	return &Mle{}
}

func (m *Mle) Entity() tetra.EntityID { return tetra.Mle }

func (m *Mle) RxPrim(_ *entities.MessageQueue, message saps.Msg) {
	if message.Sap != tetra.LcmcSap && message.Sap != tetra.LmmSap {
		panic("mle.Mle: SAP mismatch, only LcmcSap and LmmSap are permitted")
	}
	metrics.UnimplementedLog("Mle", message.Sap.String())
	logrus.WithField("sap", message.Sap).Warn("mle: not implemented")
}
