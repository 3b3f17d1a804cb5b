// Package mm implements the Mobility Management entity, BS and MS
// variants, dispatching MM PDUs received on the LmmSap.
package mm

import "github.com/proxiboi69/tetra-bluestation/bitbuf"

// PduTypeUl is the closed set of uplink MM PDU types, encoded as a 4-bit
// prefix (spec.md §4.4).
type PduTypeUl uint8

const (
	UAuthentication                      PduTypeUl = 0
	UItsiDetachType                      PduTypeUl = 1
	ULocationUpdateDemandType            PduTypeUl = 2
	UMmStatus                            PduTypeUl = 3
	UCkChangeResult                      PduTypeUl = 4
	UOtar                                PduTypeUl = 5
	UInformationProvide                  PduTypeUl = 6
	UAttachDetachGroupIdentityType       PduTypeUl = 7
	UAttachDetachGroupIdentityAck        PduTypeUl = 8
	UTeiProvide                          PduTypeUl = 9
	UDisableStatus                       PduTypeUl = 10
	MmPduFunctionNotSupportedUl          PduTypeUl = 15
)

func (p PduTypeUl) String() string {
	switch p {
	case UAuthentication:
		return "UAuthentication"
	case UItsiDetachType:
		return "UItsiDetach"
	case ULocationUpdateDemandType:
		return "ULocationUpdateDemand"
	case UMmStatus:
		return "UMmStatus"
	case UCkChangeResult:
		return "UCkChangeResult"
	case UOtar:
		return "UOtar"
	case UInformationProvide:
		return "UInformationProvide"
	case UAttachDetachGroupIdentityType:
		return "UAttachDetachGroupIdentity"
	case UAttachDetachGroupIdentityAck:
		return "UAttachDetachGroupIdentityAcknowledgement"
	case UTeiProvide:
		return "UTeiProvide"
	case UDisableStatus:
		return "UDisableStatus"
	case MmPduFunctionNotSupportedUl:
		return "MmPduFunctionNotSupported"
	default:
		return "Reserved"
	}
}

// pduTypeUlValid is the closed set of values §4.4's fallible conversion
// accepts; anything else is logged and the primitive dropped.
var pduTypeUlValid = map[PduTypeUl]bool{
	UAuthentication: true, UItsiDetachType: true, ULocationUpdateDemandType: true,
	UMmStatus: true, UCkChangeResult: true, UOtar: true, UInformationProvide: true,
	UAttachDetachGroupIdentityType: true, UAttachDetachGroupIdentityAck: true,
	UTeiProvide: true, UDisableStatus: true, MmPduFunctionNotSupportedUl: true,
}

// DecodePduTypeUl peeks the 4-bit uplink PDU-type prefix without
// consuming it, validating against the closed enumeration.
func DecodePduTypeUl(bb *bitbuf.BitBuffer) (PduTypeUl, bool) {
	bits, ok := bb.PeekBits(4)
	if !ok {
		return 0, false
	}
	t := PduTypeUl(bits)
	return t, pduTypeUlValid[t]
}

// PduTypeDl is the closed set of downlink MM PDU types.
type PduTypeDl uint8

const (
	DOtar                            PduTypeDl = 0
	DAuthentication                  PduTypeDl = 1
	DCkChangeDemand                  PduTypeDl = 2
	DDisable                         PduTypeDl = 3
	DEnable                          PduTypeDl = 4
	DLocationUpdateAcceptType        PduTypeDl = 5
	DLocationUpdateCommand           PduTypeDl = 6
	DLocationUpdateReject            PduTypeDl = 7
	DLocationUpdateProceeding        PduTypeDl = 8
	DAttachDetachGroupIdentityType   PduTypeDl = 9
	DAttachDetachGroupIdentityAck    PduTypeDl = 10
	DMmStatus                        PduTypeDl = 11
	MmPduFunctionNotSupportedDl      PduTypeDl = 15
)

var pduTypeDlValid = map[PduTypeDl]bool{
	DOtar: true, DAuthentication: true, DCkChangeDemand: true, DDisable: true,
	DEnable: true, DLocationUpdateAcceptType: true, DLocationUpdateCommand: true,
	DLocationUpdateReject: true, DLocationUpdateProceeding: true,
	DAttachDetachGroupIdentityType: true, DAttachDetachGroupIdentityAck: true,
	DMmStatus: true, MmPduFunctionNotSupportedDl: true,
}

// DecodePduTypeDl peeks the 4-bit downlink PDU-type prefix.
func DecodePduTypeDl(bb *bitbuf.BitBuffer) (PduTypeDl, bool) {
	bits, ok := bb.PeekBits(4)
	if !ok {
		return 0, false
	}
	t := PduTypeDl(bits)
	return t, pduTypeDlValid[t]
}

// LocationUpdateAcceptType is the closed set of location-update accept
// reasons carried in DLocationUpdateAccept.
type LocationUpdateAcceptType uint8

const (
	ItsiAttach LocationUpdateAcceptType = 0
	Roaming    LocationUpdateAcceptType = 1
	Periodic   LocationUpdateAcceptType = 2
	Itsi       LocationUpdateAcceptType = 3
)
