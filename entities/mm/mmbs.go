package mm

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/bitbuf"
	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// Bs is the base-station Mobility Management entity.
type Bs struct {
	entities.BaseEntity
	Clients *ClientMgr
}

// New constructs a BS-side MM entity.
func New() *Bs {
	return &Bs{Clients: NewClientMgr()}
}

func (m *Bs) Entity() tetra.EntityID { return tetra.Mm }

func (m *Bs) RxPrim(queue *entities.MessageQueue, message saps.Msg) {
	if message.Sap != tetra.LmmSap {
		panic("mm.Bs: SAP mismatch, only LmmSap is permitted")
	}
	ind, ok := message.Body.(saps.LmmMleUnitdataInd)
	if !ok {
		panic("mm.Bs: unexpected primitive body on LmmSap")
	}
	m.rxLmmMleUnitdataInd(queue, message, ind)
}

func (m *Bs) rxLmmMleUnitdataInd(queue *entities.MessageQueue, message saps.Msg, ind saps.LmmMleUnitdataInd) {
	pduType, ok := DecodePduTypeUl(ind.Sdu)
	if !ok {
		bits, _ := ind.Sdu.PeekBits(4)
		logrus.WithField("bits", bits).Warn("mm.Bs: invalid or insufficient PDU-type bits")
		metrics.PDUsDropped.Inc()
		return
	}

	switch pduType {
	case UItsiDetachType:
		m.rxUItsiDetach(ind)
	case ULocationUpdateDemandType:
		m.rxULocationUpdateDemand(queue, message, ind)
	case UAttachDetachGroupIdentityType:
		m.rxUAttachDetachGroupIdentity(queue, message, ind)
	default:
		metrics.UnimplementedLog("Mm", pduType.String())
		logrus.WithField("pdu_type", pduType).Warn("mm.Bs: unimplemented PDU type")
	}
}

func (m *Bs) rxUItsiDetach(ind saps.LmmMleUnitdataInd) {
	pdu, err := UItsiDetachFromBitBuf(ind.Sdu)
	if err != nil {
		logrus.WithError(err).Warn("mm.Bs: failed parsing UItsiDetach")
		return
	}
	_ = pdu

	ssi := ind.ReceivedAddress.Ssi
	if _, ok := m.Clients.Remove(ssi); !ok {
		logrus.WithField("ssi", ssi).Warn("mm.Bs: UItsiDetach for unknown client")
	}
}

func (m *Bs) rxULocationUpdateDemand(queue *entities.MessageQueue, message saps.Msg, ind saps.LmmMleUnitdataInd) {
	pdu, err := ULocationUpdateDemandFromBitBuf(ind.Sdu)
	if err != nil {
		logrus.WithError(err).Warn("mm.Bs: failed parsing ULocationUpdateDemand")
		return
	}

	if pdu.LocationUpdateType != 3 {
		metrics.UnimplementedLog("Mm", "ULocationUpdateDemand:non-attach")
		logrus.WithField("location_update_type", pdu.LocationUpdateType).Warn("mm.Bs: location update type not implemented")
		return
	}

	ssi := ind.ReceivedAddress.Ssi
	m.Clients.Register(ssi, true)

	ssiCopy := ssi
	response := DLocationUpdateAccept{
		LocationUpdateAcceptType: ItsiAttach,
		Ssi:                      &ssiCopy,
	}
	sdu := bitbuf.NewAutoExpand(4 + 3 + 1 + 24)
	if err := response.ToBitBuf(sdu); err != nil {
		logrus.WithError(err).Error("mm.Bs: failed serializing DLocationUpdateAccept")
		return
	}
	sdu.Seek(0)

	m.emit(queue, message.DlTime, tetra.NewIssi(ssi), sdu)
}

func (m *Bs) rxUAttachDetachGroupIdentity(queue *entities.MessageQueue, message saps.Msg, ind saps.LmmMleUnitdataInd) {
	ssi := ind.ReceivedAddress.Ssi
	pdu, err := UAttachDetachGroupIdentityFromBitBuf(ind.Sdu)
	if err != nil {
		logrus.WithError(err).Warn("mm.Bs: failed parsing UAttachDetachGroupIdentity")
		return
	}

	downlink := make([]GroupIdentityDownlinkElement, 0, len(pdu.GroupIdentityUplink))
	for _, elem := range pdu.GroupIdentityUplink {
		classOfUsage := uint8(0)
		if elem.ClassOfUsage != nil {
			classOfUsage = *elem.ClassOfUsage
		}
		downlink = append(downlink, GroupIdentityDownlinkElement{
			Gssi: elem.Gssi,
			GroupIdentityAttachment: &GroupIdentityAttachment{
				GroupIdentityAttachmentLifetime: 3, // re-attach after location update
				ClassOfUsage:                    classOfUsage,
			},
		})
	}

	response := DAttachDetachGroupIdentityAcknowledgement{
		GroupIdentityAcceptReject: 0, // accept
		GroupIdentityDownlink:     downlink,
	}
	sdu := bitbuf.NewAutoExpand(32)
	if err := response.ToBitBuf(sdu); err != nil {
		logrus.WithError(err).Error("mm.Bs: failed serializing DAttachDetachGroupIdentityAcknowledgement")
		return
	}
	sdu.Seek(0)

	m.emit(queue, message.DlTime, tetra.NewIssi(ssi), sdu)
}

// emit wraps sdu in a downlink LmmMleUnitdataReq and enqueues it per
// spec.md §4.4's downlink-emission rule: src=self, dest=Mle, current
// dltime, LmmSap.
func (m *Bs) emit(queue *entities.MessageQueue, dlTime tdma.Time, addr tetra.TetraAddress, sdu *bitbuf.BitBuffer) {
	queue.PushBack(saps.Msg{
		Sap:    tetra.LmmSap,
		Src:    tetra.Mm,
		Dest:   tetra.Mle,
		DlTime: dlTime,
		Body: saps.LmmMleUnitdataReq{
			Sdu:     sdu,
			Address: addr,
		},
	})
}
