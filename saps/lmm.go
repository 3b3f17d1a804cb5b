package saps

import (
	"github.com/proxiboi69/tetra-bluestation/bitbuf"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// LmmMleUnitdataReq is the LMM-UNITDATA request: MM asks MLE to send
// unconfirmed mobility-management data.
type LmmMleUnitdataReq struct {
	Sdu                 *bitbuf.BitBuffer
	Handle              uint32
	Address             tetra.TetraAddress
	Layer2Service       uint8
	StealingPermission  bool
	StealingRepeatsFlag bool
	EncryptionFlag      bool
	IsNullPdu           bool
}

func (LmmMleUnitdataReq) isSapBody() {}

// LmmMleUnitdataInd is the LMM-UNITDATA indication: MLE passes MM data
// received from a peer entity, tagged with the originating address.
type LmmMleUnitdataInd struct {
	Sdu             *bitbuf.BitBuffer
	Handle          uint32
	ReceivedAddress tetra.TetraAddress
}

func (LmmMleUnitdataInd) isSapBody() {}
