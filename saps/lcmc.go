package saps

import (
	"github.com/proxiboi69/tetra-bluestation/bitbuf"
	"github.com/proxiboi69/tetra-bluestation/tetra"
	"github.com/proxiboi69/tetra-bluestation/txreceipt"
)

// ChanAlloc describes the channel-allocation side effects of a D-SETUP,
// carried alongside the bit-packed PDU so UMAC can schedule air resources
// without re-parsing the SDU. Usage is the channel-allocation usage
// value; CMCE sets the same value on the initial D-SETUP and on its
// late-entry repeats, so it does not tell the two apart.
type ChanAlloc struct {
	Usage *uint8
}

// LcmcMleUnitdataReq is the MLE-UNITDATA request: CMCE asks MLE (and, via
// it, the lower layers) to send unconfirmed data to a peer.
type LcmcMleUnitdataReq struct {
	Sdu                         *bitbuf.BitBuffer
	Handle                      uint32
	EndpointID                  uint8
	LinkID                      uint8
	Layer2Service               uint8
	PduPrio                     uint8
	StealingPermission          bool
	StealingRepeatsFlag         bool
	EligibleForGracefulDegradation bool

	// ChanAlloc is set when this request also carries a channel
	// allocation (e.g. group-call D-SETUP); nil otherwise.
	ChanAlloc *ChanAlloc

	// TxReporter travels with the PDU copy down through MAC/LLC so the
	// originator can observe whether it reached the air. Nil when the
	// sender does not track transmission progress for this primitive.
	TxReporter *txreceipt.Reporter
}

func (LcmcMleUnitdataReq) isSapBody() {}

// LcmcMleUnitdataInd is the MLE-UNITDATA indication: MLE passes CMCE data
// received from a peer entity.
type LcmcMleUnitdataInd struct {
	Sdu                 *bitbuf.BitBuffer
	Handle              uint32
	EndpointID          uint8
	LinkID              uint8
	ReceivedTetraAddress tetra.TetraAddress
	ChanChangeRespReq   bool
	ChanChangeHandle    *uint32
}

func (LcmcMleUnitdataInd) isSapBody() {}
