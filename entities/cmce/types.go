// Package cmce implements the Circuit Mode Control Entity, BS and MS
// variants, dispatching CMCE PDUs received on the LcmcSap and Control
// SAP.
package cmce

import "github.com/proxiboi69/tetra-bluestation/bitbuf"

// PduTypeUl is the closed set of uplink CMCE PDU types, encoded as a
// 5-bit prefix (spec.md §4.4).
type PduTypeUl uint8

const (
	UAlert                    PduTypeUl = 0
	UConnect                  PduTypeUl = 1
	UDisconnect               PduTypeUl = 2
	UInfo                     PduTypeUl = 3
	URelease                  PduTypeUl = 4
	USetupType                PduTypeUl = 5
	UStatus                   PduTypeUl = 6
	UTxCeased                 PduTypeUl = 7
	UTxDemand                 PduTypeUl = 8
	UCallRestore              PduTypeUl = 9
	USdsData                  PduTypeUl = 10
	UFacility                 PduTypeUl = 11
	CmceFunctionNotSupported  PduTypeUl = 31
)

func (p PduTypeUl) String() string {
	switch p {
	case UAlert:
		return "UAlert"
	case UConnect:
		return "UConnect"
	case UDisconnect:
		return "UDisconnect"
	case UInfo:
		return "UInfo"
	case URelease:
		return "URelease"
	case USetupType:
		return "USetup"
	case UStatus:
		return "UStatus"
	case UTxCeased:
		return "UTxCeased"
	case UTxDemand:
		return "UTxDemand"
	case UCallRestore:
		return "UCallRestore"
	case USdsData:
		return "USdsData"
	case UFacility:
		return "UFacility"
	case CmceFunctionNotSupported:
		return "CmceFunctionNotSupported"
	default:
		return "Reserved"
	}
}

var pduTypeUlValid = map[PduTypeUl]bool{
	UAlert: true, UConnect: true, UDisconnect: true, UInfo: true, URelease: true,
	USetupType: true, UStatus: true, UTxCeased: true, UTxDemand: true,
	UCallRestore: true, USdsData: true, UFacility: true, CmceFunctionNotSupported: true,
}

// DecodePduTypeUl peeks the 5-bit uplink PDU-type prefix.
func DecodePduTypeUl(bb *bitbuf.BitBuffer) (PduTypeUl, bool) {
	bits, ok := bb.PeekBits(5)
	if !ok {
		return 0, false
	}
	t := PduTypeUl(bits)
	return t, pduTypeUlValid[t]
}

// PduTypeDl is the closed set of downlink CMCE PDU types.
type PduTypeDl uint8

const (
	DAlert                      PduTypeDl = 0
	DCallProceeding             PduTypeDl = 1
	DConnect                    PduTypeDl = 2
	DConnectAck                 PduTypeDl = 3
	DDisconnect                 PduTypeDl = 4
	DInfo                       PduTypeDl = 5
	DReleaseType                PduTypeDl = 6
	DSetupType                  PduTypeDl = 7
	DStatus                     PduTypeDl = 8
	DTxCeased                   PduTypeDl = 9
	DTxContinue                 PduTypeDl = 10
	DTxGranted                  PduTypeDl = 11
	DTxWait                     PduTypeDl = 12
	DTxInterrupt                PduTypeDl = 13
	DCallRestore                PduTypeDl = 14
	DSdsData                    PduTypeDl = 15
	DFacility                   PduTypeDl = 16
	CmceFunctionNotSupportedDl  PduTypeDl = 31
)

var pduTypeDlValid = map[PduTypeDl]bool{
	DAlert: true, DCallProceeding: true, DConnect: true, DConnectAck: true,
	DDisconnect: true, DInfo: true, DReleaseType: true, DSetupType: true,
	DStatus: true, DTxCeased: true, DTxContinue: true, DTxGranted: true,
	DTxWait: true, DTxInterrupt: true, DCallRestore: true, DSdsData: true,
	DFacility: true, CmceFunctionNotSupportedDl: true,
}

// DecodePduTypeDl peeks the 5-bit downlink PDU-type prefix.
func DecodePduTypeDl(bb *bitbuf.BitBuffer) (PduTypeDl, bool) {
	bits, ok := bb.PeekBits(5)
	if !ok {
		return 0, false
	}
	t := PduTypeDl(bits)
	return t, pduTypeDlValid[t]
}
