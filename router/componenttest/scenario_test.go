package componenttest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxiboi69/tetra-bluestation/bitbuf"
	"github.com/proxiboi69/tetra-bluestation/config"
	"github.com/proxiboi69/tetra-bluestation/entities/cmce"
	"github.com/proxiboi69/tetra-bluestation/entities/mm"
	"github.com/proxiboi69/tetra-bluestation/router/componenttest"
	"github.com/proxiboi69/tetra-bluestation/saps"
	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/tetra"
)

// TestLocationUpdateAcceptRoundTrip is scenario S1: a BS stack's MM
// entity accepts an ITSI-attach location update and replies with exactly
// one DLocationUpdateAccept wrapped in a downlink LmmMleUnitdataReq.
func TestLocationUpdateAcceptRoundTrip(t *testing.T) {
	ct := componenttest.New(config.ModeBs, nil)
	ct.PopulateEntities([]tetra.EntityID{tetra.Mm}, []tetra.EntityID{tetra.Mle})

	demand := mm.ULocationUpdateDemand{LocationUpdateType: 3}
	sdu := bitbuf.NewAutoExpand(8)
	require.NoError(t, demand.ToBitBuf(sdu))
	sdu.Seek(0)

	ct.SubmitMessage(saps.Msg{
		Sap:  tetra.LmmSap,
		Src:  tetra.Mle,
		Dest: tetra.Mm,
		Body: saps.LmmMleUnitdataInd{
			Sdu:             sdu,
			ReceivedAddress: tetra.NewIssi(1000001),
		},
	})

	one := 1
	ct.RunStack(&one)

	msgs := ct.DumpSinks()
	require.Len(t, msgs, 1)
	assert.Equal(t, tetra.LmmSap, msgs[0].Sap)
	assert.Equal(t, tetra.Mm, msgs[0].Src)
	assert.Equal(t, tetra.Mle, msgs[0].Dest)

	req, ok := msgs[0].Body.(saps.LmmMleUnitdataReq)
	require.True(t, ok)

	req.Sdu.Seek(0)
	accept, err := mm.DLocationUpdateAcceptFromBitBuf(req.Sdu)
	require.NoError(t, err)
	assert.Equal(t, mm.ItsiAttach, accept.LocationUpdateAcceptType)
	require.NotNil(t, accept.Ssi)
	assert.Equal(t, uint32(1000001), *accept.Ssi)
}

// TestGroupAttachRoundTrip is scenario S5: a UAttachDetachGroupIdentity
// carrying one uplink element is accepted and replied to with a
// DAttachDetachGroupIdentityAcknowledgement granting the same GSSI an
// attachment with lifetime code 3 (re-attach after location update).
func TestGroupAttachRoundTrip(t *testing.T) {
	ct := componenttest.New(config.ModeBs, nil)
	ct.PopulateEntities([]tetra.EntityID{tetra.Mm}, []tetra.EntityID{tetra.Mle})

	cou := uint8(4)
	req := mm.UAttachDetachGroupIdentity{
		GroupIdentityUplink: []mm.GroupIdentityUplinkElement{{Gssi: 91, ClassOfUsage: &cou}},
	}
	sdu := bitbuf.NewAutoExpand(32)
	require.NoError(t, req.ToBitBuf(sdu))
	sdu.Seek(0)

	ct.SubmitMessage(saps.Msg{
		Sap:  tetra.LmmSap,
		Src:  tetra.Mle,
		Dest: tetra.Mm,
		Body: saps.LmmMleUnitdataInd{
			Sdu:             sdu,
			ReceivedAddress: tetra.NewIssi(1000001),
		},
	})

	one := 1
	ct.RunStack(&one)

	msgs := ct.DumpSinks()
	require.Len(t, msgs, 1)

	reqOut, ok := msgs[0].Body.(saps.LmmMleUnitdataReq)
	require.True(t, ok)

	reqOut.Sdu.Seek(0)
	ack, err := mm.DAttachDetachGroupIdentityAcknowledgementFromBitBuf(reqOut.Sdu)
	require.NoError(t, err)
	assert.EqualValues(t, 0, ack.GroupIdentityAcceptReject)
	require.Len(t, ack.GroupIdentityDownlink, 1)

	elem := ack.GroupIdentityDownlink[0]
	assert.Equal(t, uint32(91), elem.Gssi)
	require.NotNil(t, elem.GroupIdentityAttachment)
	assert.EqualValues(t, 3, elem.GroupIdentityAttachment.GroupIdentityAttachmentLifetime)
	assert.EqualValues(t, 4, elem.GroupIdentityAttachment.ClassOfUsage)
}

// TestUnknownPduTypeIsDroppedNotFatal is scenario S6: a primitive whose
// PDU-type prefix falls outside the closed uplink enumeration is
// dropped with a warning, producing no outbound primitives, and the
// stack keeps running.
func TestUnknownPduTypeIsDroppedNotFatal(t *testing.T) {
	ct := componenttest.New(config.ModeBs, nil)
	ct.PopulateEntities([]tetra.EntityID{tetra.Mm}, []tetra.EntityID{tetra.Mle})

	sdu := bitbuf.FromBitString("1011") // 11: reserved between UDisableStatus(10) and MmPduFunctionNotSupported(15)
	ct.SubmitMessage(saps.Msg{
		Sap:  tetra.LmmSap,
		Src:  tetra.Mle,
		Dest: tetra.Mm,
		Body: saps.LmmMleUnitdataInd{
			Sdu:             sdu,
			ReceivedAddress: tetra.NewIssi(1000001),
		},
	})

	one := 1
	assert.NotPanics(t, func() { ct.RunStack(&one) })
	assert.Empty(t, ct.DumpSinks())

	// A further tick must still run cleanly: the fault was non-fatal.
	assert.NotPanics(t, func() { ct.RunStack(&one) })
}

// TestLateEntryThrottleScenario is scenario S2: BS with CMCE only; a
// group-call USetup triggers an initial D-SETUP, a guaranteed backup
// repeat within the short grace window, throttled silence while the
// backup's receipt stays outstanding, then resumption once it is marked
// transmitted.
func TestLateEntryThrottleScenario(t *testing.T) {
	start := tdma.Default()
	ct := componenttest.New(config.ModeBs, &start)
	ct.PopulateEntities([]tetra.EntityID{tetra.Cmce}, []tetra.EntityID{tetra.Mle})

	ct.SubmitMessage(saps.Msg{
		Sap:  tetra.Control,
		Src:  tetra.Brew,
		Dest: tetra.Cmce,
		Body: saps.MmSubscriberUpdate{Issi: 1000001, Groups: []uint32{91}, Action: saps.BrewAffiliate},
	})

	speech := uint8(0)
	gssi := uint64(91)
	setup := cmce.USetup{
		BasicServiceInformation: cmce.BasicServiceInformation{
			CircuitModeType:   cmce.TchS,
			CommunicationType: cmce.PointToMulti,
			SpeechService:     &speech,
		},
		CalledPartyTypeIdentifier: 1,
		CalledPartySsi:            &gssi,
	}
	sdu := bitbuf.NewAutoExpand(64)
	require.NoError(t, setup.ToBitBuf(sdu))
	sdu.Seek(0)

	ct.SubmitMessage(saps.Msg{
		DlTime: start,
		Sap:    tetra.LcmcSap,
		Src:    tetra.Mle,
		Dest:   tetra.Cmce,
		Body:   saps.LcmcMleUnitdataInd{Sdu: sdu},
	})

	one := 1
	ct.RunStack(&one)
	initial := ct.DumpSinks()
	require.Len(t, initial, 1, "expected the initial D-SETUP")

	eight := 8
	ct.RunStack(&eight)
	backupMsgs := ct.DumpSinks()
	require.Len(t, backupMsgs, 1, "expected the guaranteed backup D-SETUP")
	backupReq, ok := backupMsgs[0].Body.(saps.LcmcMleUnitdataReq)
	require.True(t, ok)
	require.NotNil(t, backupReq.TxReporter)

	sevenTwenty := 720
	ct.RunStack(&sevenTwenty)
	assert.Empty(t, ct.DumpSinks(), "expected no D-SETUPs while the backup receipt is still Pending")

	backupReq.TxReporter.MarkTransmitted()
	ct.RunStack(&sevenTwenty)
	resumed := ct.DumpSinks()
	assert.NotEmpty(t, resumed, "expected at least one D-SETUP once the retained receipt is transmitted")
	for _, msg := range resumed {
		req, ok := msg.Body.(saps.LcmcMleUnitdataReq)
		require.True(t, ok)
		assert.NotSame(t, backupReq.TxReporter, req.TxReporter, "expected each resumed repeat to carry its own reporter")
	}
}
