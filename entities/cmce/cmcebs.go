package cmce

import (
	"github.com/sirupsen/logrus"

	"github.com/proxiboi69/tetra-bluestation/bitbuf"
	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/metrics"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
	"github.com/proxiboi69/tetra-bluestation/txreceipt"
)

// Bs is the base-station Circuit Mode Control Entity. It accepts CMCE
// traffic on LcmcSap and subscriber-table updates from management on the
// Control SAP, and runs the late-entry D-SETUP repeat algorithm for
// group calls it has set up.
type Bs struct {
	entities.BaseEntity
	Groups *GroupTable

	lateEntry map[uint32]*lateEntryCycle
}

// New constructs a BS-side CMCE entity.
func New() *Bs {
	return &Bs{
		Groups:    NewGroupTable(),
		lateEntry: make(map[uint32]*lateEntryCycle),
	}
}

func (c *Bs) Entity() tetra.EntityID { return tetra.Cmce }

func (c *Bs) RxPrim(queue *entities.MessageQueue, message saps.Msg) {
	switch message.Sap {
	case tetra.LcmcSap:
		ind, ok := message.Body.(saps.LcmcMleUnitdataInd)
		if !ok {
			panic("cmce.Bs: unexpected primitive body on LcmcSap")
		}
		c.rxLcmcMleUnitdataInd(queue, message, ind)
	case tetra.Control:
		upd, ok := message.Body.(saps.MmSubscriberUpdate)
		if !ok {
			panic("cmce.Bs: unexpected primitive body on Control SAP")
		}
		c.rxMmSubscriberUpdate(upd)
	default:
		panic("cmce.Bs: SAP mismatch, only LcmcSap and Control are permitted")
	}
}

func (c *Bs) rxMmSubscriberUpdate(upd saps.MmSubscriberUpdate) {
	switch upd.Action {
	case saps.BrewRegister:
		c.Groups.Register(upd.Issi)
	case saps.BrewAffiliate:
		for _, gssi := range upd.Groups {
			c.Groups.Affiliate(upd.Issi, gssi)
		}
	case saps.BrewDeregister:
		c.Groups.Deregister(upd.Issi)
	case saps.BrewDetach:
		for _, gssi := range upd.Groups {
			c.Groups.Detach(upd.Issi, gssi)
		}
	}
}

func (c *Bs) rxLcmcMleUnitdataInd(queue *entities.MessageQueue, message saps.Msg, ind saps.LcmcMleUnitdataInd) {
	pduType, ok := DecodePduTypeUl(ind.Sdu)
	if !ok {
		bits, _ := ind.Sdu.PeekBits(5)
		logrus.WithField("bits", bits).Warn("cmce.Bs: invalid or insufficient PDU-type bits")
		metrics.PDUsDropped.Inc()
		return
	}

	switch pduType {
	case USetupType:
		c.rxUSetup(queue, message, ind)
	default:
		metrics.UnimplementedLog("Cmce", pduType.String())
		logrus.WithField("pdu_type", pduType).Warn("cmce.Bs: unimplemented PDU type")
	}
}

func (c *Bs) rxUSetup(queue *entities.MessageQueue, message saps.Msg, ind saps.LcmcMleUnitdataInd) {
	pdu, err := USetupFromBitBuf(ind.Sdu)
	if err != nil {
		logrus.WithError(err).Warn("cmce.Bs: failed parsing USetup")
		return
	}

	if pdu.BasicServiceInformation.CommunicationType != PointToMulti || pdu.CalledPartySsi == nil {
		metrics.UnimplementedLog("Cmce", "USetup:individual-call")
		logrus.Warn("cmce.Bs: individual-call USetup not implemented")
		return
	}

	gssi := uint32(*pdu.CalledPartySsi)
	if len(c.Groups.MembersOf(gssi)) == 0 {
		logrus.WithField("gssi", gssi).Warn("cmce.Bs: rejecting group USetup, no ISSI is affiliated with this GSSI")
		return
	}
	c.startLateEntry(queue, message.DlTime, gssi, pdu.BasicServiceInformation)
}

// startLateEntry emits the initial D-SETUP for a group call and begins
// tracking its periodic late-entry repeat cycle.
func (c *Bs) startLateEntry(queue *entities.MessageQueue, dlTime tdma.Time, gssi uint32, bsi BasicServiceInformation) {
	receipt := c.emitDSetup(queue, dlTime, gssi, bsi)
	c.lateEntry[gssi] = newLateEntryCycle(gssi, bsi, receipt, dlTime)
}

// emitDSetup serializes and enqueues one D-SETUP broadcast, returning the
// freshly-minted TxReceipt so the caller can retain it for throttling.
func (c *Bs) emitDSetup(queue *entities.MessageQueue, dlTime tdma.Time, gssi uint32, bsi BasicServiceInformation) txreceipt.Receipt {
	usage := uint8(1)
	pdu := DSetup{
		CalledPartyGssi:         gssi,
		BasicServiceInformation: bsi,
		ChannelAllocationUsage:  &usage,
	}

	sdu := bitbuf.NewAutoExpand(64)
	if err := pdu.ToBitBuf(sdu); err != nil {
		logrus.WithError(err).Error("cmce.Bs: failed serializing DSetup")
		return txreceipt.Receipt{}
	}
	sdu.Seek(0)

	receipt, reporter := txreceipt.New(false)
	queue.PushBack(saps.Msg{
		Sap:    tetra.LcmcSap,
		Src:    tetra.Cmce,
		Dest:   tetra.Mle,
		DlTime: dlTime,
		Body: saps.LcmcMleUnitdataReq{
			Sdu:        sdu,
			ChanAlloc:  &saps.ChanAlloc{Usage: &usage},
			TxReporter: &reporter,
		},
	})
	return receipt
}

// TickStart drives the late-entry repeat cycles: a cycle's D-SETUP is
// re-emitted once its interval elapses and its previously retained
// receipt has reached a final state; otherwise the repeat is held back
// and rechecked next interval. The one exception is the guaranteed
// backup: the first due check after the initial D-SETUP emits a repeat
// even while the initial receipt is still outstanding.
func (c *Bs) TickStart(queue *entities.MessageQueue, dlTime tdma.Time) {
	for gssi, cycle := range c.lateEntry {
		if !cycle.due(dlTime) {
			continue
		}

		if cycle.throttled() {
			if !cycle.consumeGuaranteedBackup() {
				cycle.deferThrottled(dlTime)
				continue
			}
			// fall through: the guaranteed backup fires once even
			// while the prior receipt is still outstanding.
		}

		receipt := c.emitDSetup(queue, dlTime, gssi, cycle.basicService)
		logrus.WithFields(logrus.Fields{
			"correlation_id": cycle.correlationID,
			"gssi":           gssi,
		}).Debug("cmce.Bs: late-entry D-SETUP repeat emitted")
		if cycle.advance(receipt, dlTime) {
			delete(c.lateEntry, gssi)
		}
	}
}
