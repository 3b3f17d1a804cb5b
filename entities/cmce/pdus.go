package cmce

import "github.com/proxiboi69/tetra-bluestation/bitbuf"

// CircuitModeType is the basic-service circuit type (ETSI EN 300 392-2
// clause 14.8.7). Only the values this scope exercises are named; the
// rest decode into the numeric value without a symbolic name.
type CircuitModeType uint8

const (
	TchS CircuitModeType = 0
)

// CommunicationType is the basic-service communication mode.
type CommunicationType uint8

const (
	PointToPoint  CommunicationType = 0
	PointToMulti  CommunicationType = 1 // P2Mp: group call
)

// BasicServiceInformation carries the call's circuit and communication
// type, grounded on CMCE's basic_service_information field.
type BasicServiceInformation struct {
	CircuitModeType   CircuitModeType // 4 bits
	EncryptionFlag    bool            // 1 bit
	CommunicationType CommunicationType // 2 bits
	SlotsPerFrame     *uint8          // presence bit + 2 bits
	SpeechService     *uint8          // presence bit + 1 bit
}

func (b BasicServiceInformation) writeTo(dst *bitbuf.BitBuffer) error {
	if err := dst.WriteBits(uint64(b.CircuitModeType), 4); err != nil {
		return err
	}
	if err := writeBool(dst, b.EncryptionFlag); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(b.CommunicationType), 2); err != nil {
		return err
	}
	if err := writeOptU8(dst, b.SlotsPerFrame, 2); err != nil {
		return err
	}
	return writeOptU8(dst, b.SpeechService, 1)
}

func basicServiceInformationFrom(src *bitbuf.BitBuffer) (BasicServiceInformation, error) {
	var b BasicServiceInformation
	cmt, ok := src.ReadBits(4)
	if !ok {
		return b, bitbuf.ErrUnexpectedEOF
	}
	b.CircuitModeType = CircuitModeType(cmt)

	enc, err := readBool(src)
	if err != nil {
		return b, err
	}
	b.EncryptionFlag = enc

	ct, ok := src.ReadBits(2)
	if !ok {
		return b, bitbuf.ErrUnexpectedEOF
	}
	b.CommunicationType = CommunicationType(ct)

	spf, err := readOptU8(src, 2)
	if err != nil {
		return b, err
	}
	b.SlotsPerFrame = spf

	ss, err := readOptU8(src, 1)
	if err != nil {
		return b, err
	}
	b.SpeechService = ss

	return b, nil
}

// USetup is the uplink call-setup request. §8 S2 exercises a group call
// (CommunicationType=PointToMulti) addressed to a GSSI.
type USetup struct {
	AreaSelection              uint8 // 2 bits
	HookMethodSelection        bool
	SimplexDuplexSelection     bool
	BasicServiceInformation    BasicServiceInformation
	RequestToTransmitSendData  bool
	CallPriority               uint8 // 3 bits
	ClirControl                uint8 // 2 bits
	CalledPartyTypeIdentifier  uint8 // 2 bits: 0=SNA, 1=SSI
	CalledPartySsi             *uint64 // presence bit + 24 bits
}

func (p USetup) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if err := dst.WriteBits(uint64(USetupType), 5); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.AreaSelection), 2); err != nil {
		return err
	}
	if err := writeBool(dst, p.HookMethodSelection); err != nil {
		return err
	}
	if err := writeBool(dst, p.SimplexDuplexSelection); err != nil {
		return err
	}
	if err := p.BasicServiceInformation.writeTo(dst); err != nil {
		return err
	}
	if err := writeBool(dst, p.RequestToTransmitSendData); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.CallPriority), 3); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.ClirControl), 2); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.CalledPartyTypeIdentifier), 2); err != nil {
		return err
	}
	if p.CalledPartySsi != nil {
		if err := dst.WriteBits(1, 1); err != nil {
			return err
		}
		return dst.WriteBits(*p.CalledPartySsi, 24)
	}
	return dst.WriteBits(0, 1)
}

func USetupFromBitBuf(src *bitbuf.BitBuffer) (USetup, error) {
	prefix, ok := src.ReadBits(5)
	if !ok {
		return USetup{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeUl(prefix) != USetupType {
		return USetup{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}

	var p USetup
	areaSel, ok := src.ReadBits(2)
	if !ok {
		return USetup{}, bitbuf.ErrUnexpectedEOF
	}
	p.AreaSelection = uint8(areaSel)

	hms, err := readBool(src)
	if err != nil {
		return USetup{}, err
	}
	p.HookMethodSelection = hms

	sds, err := readBool(src)
	if err != nil {
		return USetup{}, err
	}
	p.SimplexDuplexSelection = sds

	bsi, err := basicServiceInformationFrom(src)
	if err != nil {
		return USetup{}, err
	}
	p.BasicServiceInformation = bsi

	rtsd, err := readBool(src)
	if err != nil {
		return USetup{}, err
	}
	p.RequestToTransmitSendData = rtsd

	prio, ok := src.ReadBits(3)
	if !ok {
		return USetup{}, bitbuf.ErrUnexpectedEOF
	}
	p.CallPriority = uint8(prio)

	clir, ok := src.ReadBits(2)
	if !ok {
		return USetup{}, bitbuf.ErrUnexpectedEOF
	}
	p.ClirControl = uint8(clir)

	typeID, ok := src.ReadBits(2)
	if !ok {
		return USetup{}, bitbuf.ErrUnexpectedEOF
	}
	p.CalledPartyTypeIdentifier = uint8(typeID)

	present, ok := src.ReadBits(1)
	if !ok {
		return USetup{}, bitbuf.ErrUnexpectedEOF
	}
	if present == 1 {
		ssi, ok := src.ReadBits(24)
		if !ok {
			return USetup{}, bitbuf.ErrUnexpectedEOF
		}
		p.CalledPartySsi = &ssi
	}

	return p, nil
}

// DSetup is the downlink call-setup broadcast. CMCE re-emits this
// periodically for group calls so late-joining subscribers can acquire
// the call's channel allocation (spec.md §4.4's illustrative algorithm).
type DSetup struct {
	CalledPartyGssi         uint32 // 24 bits
	BasicServiceInformation BasicServiceInformation
	// ChannelAllocationUsage, when non-nil, is the channel-allocation
	// usage value carried with the call setup. Bs sets the same value on
	// the initial D-SETUP and on every late-entry repeat; the late-entry
	// throttle does not look at it.
	ChannelAllocationUsage *uint8 // presence bit + 4 bits
}

func (p DSetup) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if err := dst.WriteBits(uint64(DSetupType), 5); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.CalledPartyGssi), 24); err != nil {
		return err
	}
	if err := p.BasicServiceInformation.writeTo(dst); err != nil {
		return err
	}
	return writeOptU8(dst, p.ChannelAllocationUsage, 4)
}

func DSetupFromBitBuf(src *bitbuf.BitBuffer) (DSetup, error) {
	prefix, ok := src.ReadBits(5)
	if !ok {
		return DSetup{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeDl(prefix) != DSetupType {
		return DSetup{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}

	var p DSetup
	gssi, ok := src.ReadBits(24)
	if !ok {
		return DSetup{}, bitbuf.ErrUnexpectedEOF
	}
	p.CalledPartyGssi = uint32(gssi)

	bsi, err := basicServiceInformationFrom(src)
	if err != nil {
		return DSetup{}, err
	}
	p.BasicServiceInformation = bsi

	usage, err := readOptU8(src, 4)
	if err != nil {
		return DSetup{}, err
	}
	p.ChannelAllocationUsage = usage

	return p, nil
}

func writeBool(dst *bitbuf.BitBuffer, v bool) error {
	if v {
		return dst.WriteBits(1, 1)
	}
	return dst.WriteBits(0, 1)
}

func readBool(src *bitbuf.BitBuffer) (bool, error) {
	bits, ok := src.ReadBits(1)
	if !ok {
		return false, bitbuf.ErrUnexpectedEOF
	}
	return bits == 1, nil
}

func writeOptU8(dst *bitbuf.BitBuffer, v *uint8, width int) error {
	if v != nil {
		if err := dst.WriteBits(1, 1); err != nil {
			return err
		}
		return dst.WriteBits(uint64(*v), width)
	}
	return dst.WriteBits(0, 1)
}

func readOptU8(src *bitbuf.BitBuffer, width int) (*uint8, error) {
	present, ok := src.ReadBits(1)
	if !ok {
		return nil, bitbuf.ErrUnexpectedEOF
	}
	if present != 1 {
		return nil, nil
	}
	bits, ok := src.ReadBits(width)
	if !ok {
		return nil, bitbuf.ErrUnexpectedEOF
	}
	v := uint8(bits)
	return &v, nil
}
