package mm

import (
	"fmt"

	"github.com/proxiboi69/tetra-bluestation/bitbuf"
)

// ULocationUpdateDemand is the uplink location-update request. §8 S1
// exercises location_update_type == 3 (ITSI attach).
type ULocationUpdateDemand struct {
	LocationUpdateType uint8 // 3 bits
}

func (p ULocationUpdateDemand) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if err := dst.WriteBits(uint64(ULocationUpdateDemandType), 4); err != nil {
		return err
	}
	return dst.WriteBits(uint64(p.LocationUpdateType), 3)
}

func ULocationUpdateDemandFromBitBuf(src *bitbuf.BitBuffer) (ULocationUpdateDemand, error) {
	prefix, ok := src.ReadBits(4)
	if !ok {
		return ULocationUpdateDemand{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeUl(prefix) != ULocationUpdateDemandType {
		return ULocationUpdateDemand{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}
	lut, ok := src.ReadBits(3)
	if !ok {
		return ULocationUpdateDemand{}, bitbuf.ErrUnexpectedEOF
	}
	return ULocationUpdateDemand{LocationUpdateType: uint8(lut)}, nil
}

// UItsiDetach is the uplink ITSI-detach notification.
type UItsiDetach struct {
	Reason uint8 // 3 bits
}

func (p UItsiDetach) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if err := dst.WriteBits(uint64(UItsiDetachType), 4); err != nil {
		return err
	}
	return dst.WriteBits(uint64(p.Reason), 3)
}

func UItsiDetachFromBitBuf(src *bitbuf.BitBuffer) (UItsiDetach, error) {
	prefix, ok := src.ReadBits(4)
	if !ok {
		return UItsiDetach{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeUl(prefix) != UItsiDetachType {
		return UItsiDetach{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}
	reason, ok := src.ReadBits(3)
	if !ok {
		return UItsiDetach{}, bitbuf.ErrUnexpectedEOF
	}
	return UItsiDetach{Reason: uint8(reason)}, nil
}

// GroupIdentityUplinkElement carries one group-identity attachment
// request in UAttachDetachGroupIdentity.
type GroupIdentityUplinkElement struct {
	Gssi          uint32  // 24 bits
	ClassOfUsage  *uint8  // presence bit + 4 bits
}

// UAttachDetachGroupIdentity is the uplink group-attach/detach request;
// §8 S5 exercises a single element with gssi=91, class_of_usage=4.
type UAttachDetachGroupIdentity struct {
	GroupIdentityUplink []GroupIdentityUplinkElement
}

const maxGroupIdentityElements = 31 // fits the 5-bit count field

func (p UAttachDetachGroupIdentity) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if len(p.GroupIdentityUplink) > maxGroupIdentityElements {
		return fmt.Errorf("mm: too many group identity elements: %d", len(p.GroupIdentityUplink))
	}
	if err := dst.WriteBits(uint64(UAttachDetachGroupIdentityType), 4); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(len(p.GroupIdentityUplink)), 5); err != nil {
		return err
	}
	for _, e := range p.GroupIdentityUplink {
		if err := dst.WriteBits(uint64(e.Gssi), 24); err != nil {
			return err
		}
		if e.ClassOfUsage != nil {
			if err := dst.WriteBits(1, 1); err != nil {
				return err
			}
			if err := dst.WriteBits(uint64(*e.ClassOfUsage), 4); err != nil {
				return err
			}
		} else {
			if err := dst.WriteBits(0, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func UAttachDetachGroupIdentityFromBitBuf(src *bitbuf.BitBuffer) (UAttachDetachGroupIdentity, error) {
	prefix, ok := src.ReadBits(4)
	if !ok {
		return UAttachDetachGroupIdentity{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeUl(prefix) != UAttachDetachGroupIdentityType {
		return UAttachDetachGroupIdentity{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}
	count, ok := src.ReadBits(5)
	if !ok {
		return UAttachDetachGroupIdentity{}, bitbuf.ErrUnexpectedEOF
	}
	elems := make([]GroupIdentityUplinkElement, 0, count)
	for i := uint64(0); i < count; i++ {
		gssi, ok := src.ReadBits(24)
		if !ok {
			return UAttachDetachGroupIdentity{}, bitbuf.ErrUnexpectedEOF
		}
		present, ok := src.ReadBits(1)
		if !ok {
			return UAttachDetachGroupIdentity{}, bitbuf.ErrUnexpectedEOF
		}
		elem := GroupIdentityUplinkElement{Gssi: uint32(gssi)}
		if present == 1 {
			cou, ok := src.ReadBits(4)
			if !ok {
				return UAttachDetachGroupIdentity{}, bitbuf.ErrUnexpectedEOF
			}
			v := uint8(cou)
			elem.ClassOfUsage = &v
		}
		elems = append(elems, elem)
	}
	return UAttachDetachGroupIdentity{GroupIdentityUplink: elems}, nil
}

// DLocationUpdateAccept is the downlink reply accepting a location
// update.
type DLocationUpdateAccept struct {
	LocationUpdateAcceptType LocationUpdateAcceptType // 3 bits
	Ssi                      *uint32                  // presence bit + 24 bits
}

func (p DLocationUpdateAccept) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if err := dst.WriteBits(uint64(DLocationUpdateAcceptType), 4); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.LocationUpdateAcceptType), 3); err != nil {
		return err
	}
	if p.Ssi != nil {
		if err := dst.WriteBits(1, 1); err != nil {
			return err
		}
		return dst.WriteBits(uint64(*p.Ssi), 24)
	}
	return dst.WriteBits(0, 1)
}

func DLocationUpdateAcceptFromBitBuf(src *bitbuf.BitBuffer) (DLocationUpdateAccept, error) {
	prefix, ok := src.ReadBits(4)
	if !ok {
		return DLocationUpdateAccept{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeDl(prefix) != DLocationUpdateAcceptType {
		return DLocationUpdateAccept{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}
	lut, ok := src.ReadBits(3)
	if !ok {
		return DLocationUpdateAccept{}, bitbuf.ErrUnexpectedEOF
	}
	present, ok := src.ReadBits(1)
	if !ok {
		return DLocationUpdateAccept{}, bitbuf.ErrUnexpectedEOF
	}
	out := DLocationUpdateAccept{LocationUpdateAcceptType: LocationUpdateAcceptType(lut)}
	if present == 1 {
		ssi, ok := src.ReadBits(24)
		if !ok {
			return DLocationUpdateAccept{}, bitbuf.ErrUnexpectedEOF
		}
		v := uint32(ssi)
		out.Ssi = &v
	}
	return out, nil
}

// GroupIdentityAttachment carries the accepted lifetime and usage class
// for one group attachment.
type GroupIdentityAttachment struct {
	GroupIdentityAttachmentLifetime uint8 // 3 bits
	ClassOfUsage                    uint8 // 4 bits
}

// GroupIdentityDownlinkElement is the downlink counterpart of
// GroupIdentityUplinkElement.
type GroupIdentityDownlinkElement struct {
	Gssi                   uint32 // 24 bits
	GroupIdentityAttachment *GroupIdentityAttachment
}

// DAttachDetachGroupIdentityAcknowledgement is the downlink reply to a
// group attach/detach request; §8 S5 exercises group_identity_accept_reject=0.
type DAttachDetachGroupIdentityAcknowledgement struct {
	GroupIdentityAcceptReject uint8 // 2 bits, 0 = accept
	GroupIdentityDownlink     []GroupIdentityDownlinkElement
}

func (p DAttachDetachGroupIdentityAcknowledgement) ToBitBuf(dst *bitbuf.BitBuffer) error {
	if len(p.GroupIdentityDownlink) > maxGroupIdentityElements {
		return fmt.Errorf("mm: too many group identity elements: %d", len(p.GroupIdentityDownlink))
	}
	if err := dst.WriteBits(uint64(DAttachDetachGroupIdentityAck), 4); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(p.GroupIdentityAcceptReject), 2); err != nil {
		return err
	}
	if err := dst.WriteBits(uint64(len(p.GroupIdentityDownlink)), 5); err != nil {
		return err
	}
	for _, e := range p.GroupIdentityDownlink {
		if err := dst.WriteBits(uint64(e.Gssi), 24); err != nil {
			return err
		}
		if e.GroupIdentityAttachment != nil {
			if err := dst.WriteBits(1, 1); err != nil {
				return err
			}
			if err := dst.WriteBits(uint64(e.GroupIdentityAttachment.GroupIdentityAttachmentLifetime), 3); err != nil {
				return err
			}
			if err := dst.WriteBits(uint64(e.GroupIdentityAttachment.ClassOfUsage), 4); err != nil {
				return err
			}
		} else {
			if err := dst.WriteBits(0, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func DAttachDetachGroupIdentityAcknowledgementFromBitBuf(src *bitbuf.BitBuffer) (DAttachDetachGroupIdentityAcknowledgement, error) {
	prefix, ok := src.ReadBits(4)
	if !ok {
		return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
	}
	if PduTypeDl(prefix) != DAttachDetachGroupIdentityAck {
		return DAttachDetachGroupIdentityAcknowledgement{}, &bitbuf.InvalidEnumError{Field: "pdu_type", Value: prefix}
	}
	gar, ok := src.ReadBits(2)
	if !ok {
		return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
	}
	count, ok := src.ReadBits(5)
	if !ok {
		return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
	}
	elems := make([]GroupIdentityDownlinkElement, 0, count)
	for i := uint64(0); i < count; i++ {
		gssi, ok := src.ReadBits(24)
		if !ok {
			return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
		}
		present, ok := src.ReadBits(1)
		if !ok {
			return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
		}
		elem := GroupIdentityDownlinkElement{Gssi: uint32(gssi)}
		if present == 1 {
			lifetime, ok := src.ReadBits(3)
			if !ok {
				return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
			}
			cou, ok := src.ReadBits(4)
			if !ok {
				return DAttachDetachGroupIdentityAcknowledgement{}, bitbuf.ErrUnexpectedEOF
			}
			elem.GroupIdentityAttachment = &GroupIdentityAttachment{
				GroupIdentityAttachmentLifetime: uint8(lifetime),
				ClassOfUsage:                    uint8(cou),
			}
		}
		elems = append(elems, elem)
	}
	return DAttachDetachGroupIdentityAcknowledgement{
		GroupIdentityAcceptReject: uint8(gar),
		GroupIdentityDownlink:     elems,
	}, nil
}
