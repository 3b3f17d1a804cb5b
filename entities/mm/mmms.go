package mm

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Ms is the mobile-station Mobility Management entity. Its dispatch
// skeleton and PDU-type enum are complete; response bodies are Non-goals
// in this scope (BS mode is spec.md's tested stack mode throughout), so
// every branch is an unimplemented-log stub.
type Ms struct {
	entities.BaseEntity
}

// NewMs constructs an MS-side MM entity.
func NewMs() *Ms {
	return &Ms{}
}

func (m *Ms) Entity() tetra.EntityID { return tetra.Mm }

func (m *Ms) RxPrim(queue *entities.MessageQueue, message saps.Msg) {
	if message.Sap != tetra.LmmSap {
		panic("mm.Ms: SAP mismatch, only LmmSap is permitted")
	}
	ind, ok := message.Body.(saps.LmmMleUnitdataInd)
	if !ok {
		panic("mm.Ms: unexpected primitive body on LmmSap")
	}
	m.rxLmmMleUnitdataInd(ind)
}

func (m *Ms) rxLmmMleUnitdataInd(ind saps.LmmMleUnitdataInd) {
	pduType, ok := DecodePduTypeDl(ind.Sdu)
	if !ok {
		bits, _ := ind.Sdu.PeekBits(4)
		logrus.WithField("bits", bits).Warn("mm.Ms: invalid or insufficient PDU-type bits")
		metrics.PDUsDropped.Inc()
		return
	}

	metrics.UnimplementedLog("Mm", pduType.String())
	logrus.WithField("pdu_type", pduType).Warn("mm.Ms: unimplemented PDU type")
}
