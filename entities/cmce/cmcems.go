package cmce

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Ms is the mobile-station Circuit Mode Control Entity. Its dispatch
// skeleton and PDU-type enum are complete; call-handling behavior is a
// Non-goal in this scope (BS mode is spec.md's tested stack mode
// throughout), so every branch is an unimplemented-log stub.
type Ms struct {
	entities.BaseEntity
}

// NewMs constructs an MS-side CMCE entity.
func NewMs() *Ms {
	return &Ms{}
}

func (c *Ms) Entity() tetra.EntityID { return tetra.Cmce }

func (c *Ms) RxPrim(queue *entities.MessageQueue, message saps.Msg) {
	if message.Sap != tetra.LcmcSap {
		panic("cmce.Ms: SAP mismatch, only LcmcSap is permitted")
	}
	ind, ok := message.Body.(saps.LcmcMleUnitdataInd)
	if !ok {
		panic("cmce.Ms: unexpected primitive body on LcmcSap")
	}
	c.rxLcmcMleUnitdataInd(ind)
}

func (c *Ms) rxLcmcMleUnitdataInd(ind saps.LcmcMleUnitdataInd) {
	pduType, ok := DecodePduTypeDl(ind.Sdu)
	if !ok {
		bits, _ := ind.Sdu.PeekBits(5)
		logrus.WithField("bits", bits).Warn("cmce.Ms: invalid or insufficient PDU-type bits")
		metrics.PDUsDropped.Inc()
		return
	}

	metrics.UnimplementedLog("Cmce", pduType.String())
	logrus.WithField("pdu_type", pduType).Warn("cmce.Ms: unimplemented PDU type")
}
