package mm

import (
	"testing"

	"github.com/proxiboi69/tetra-bluestation/bitbuf"
)

func TestULocationUpdateDemandRoundTrip(t *testing.T) {
	p := ULocationUpdateDemand{LocationUpdateType: 3}
	bb := bitbuf.NewAutoExpand(0)
	if err := p.ToBitBuf(bb); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	bb.Seek(0)

	got, err := ULocationUpdateDemandFromBitBuf(bb)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != p {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestUAttachDetachGroupIdentityRoundTrip(t *testing.T) {
	cou := uint8(4)
	p := UAttachDetachGroupIdentity{
		GroupIdentityUplink: []GroupIdentityUplinkElement{
			{Gssi: 91, ClassOfUsage: &cou},
		},
	}
	bb := bitbuf.NewAutoExpand(0)
	if err := p.ToBitBuf(bb); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	bb.Seek(0)

	got, err := UAttachDetachGroupIdentityFromBitBuf(bb)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.GroupIdentityUplink) != 1 {
		t.Fatalf("expected 1 element, got %d", len(got.GroupIdentityUplink))
	}
	elem := got.GroupIdentityUplink[0]
	if elem.Gssi != 91 || elem.ClassOfUsage == nil || *elem.ClassOfUsage != 4 {
		t.Errorf("unexpected round-tripped element: %+v", elem)
	}
}

func TestDLocationUpdateAcceptRoundTrip(t *testing.T) {
	ssi := uint32(1000001)
	p := DLocationUpdateAccept{LocationUpdateAcceptType: ItsiAttach, Ssi: &ssi}
	bb := bitbuf.NewAutoExpand(0)
	if err := p.ToBitBuf(bb); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	bb.Seek(0)

	got, err := DLocationUpdateAcceptFromBitBuf(bb)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.LocationUpdateAcceptType != ItsiAttach || got.Ssi == nil || *got.Ssi != ssi {
		t.Errorf("unexpected round-tripped PDU: %+v", got)
	}
}

func TestDAttachDetachGroupIdentityAcknowledgementRoundTrip(t *testing.T) {
	p := DAttachDetachGroupIdentityAcknowledgement{
		GroupIdentityAcceptReject: 0,
		GroupIdentityDownlink: []GroupIdentityDownlinkElement{
			{Gssi: 91, GroupIdentityAttachment: &GroupIdentityAttachment{
				GroupIdentityAttachmentLifetime: 3,
				ClassOfUsage:                    4,
			}},
		},
	}
	bb := bitbuf.NewAutoExpand(0)
	if err := p.ToBitBuf(bb); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	bb.Seek(0)

	got, err := DAttachDetachGroupIdentityAcknowledgementFromBitBuf(bb)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.GroupIdentityAcceptReject != 0 || len(got.GroupIdentityDownlink) != 1 {
		t.Fatalf("unexpected round-tripped PDU: %+v", got)
	}
	elem := got.GroupIdentityDownlink[0]
	if elem.Gssi != 91 || elem.GroupIdentityAttachment == nil ||
		elem.GroupIdentityAttachment.GroupIdentityAttachmentLifetime != 3 ||
		elem.GroupIdentityAttachment.ClassOfUsage != 4 {
		t.Errorf("unexpected round-tripped element: %+v", elem)
	}
}

func TestDecodePduTypeUlRejectsReservedValue(t *testing.T) {
	bb := bitbuf.FromBitString("1011") // 11 = reserved between UDisableStatus(10) and 15
	if _, ok := DecodePduTypeUl(bb); ok {
		t.Fatalf("expected reserved PDU-type value to be rejected")
	}
}

func TestDecodePduTypeUlInsufficientBits(t *testing.T) {
	bb := bitbuf.FromBitString("101")
	if _, ok := DecodePduTypeUl(bb); ok {
		t.Fatalf("expected insufficient bits to be rejected")
	}
}
