package cmce

import (
	"github.com/google/uuid"

	"github.com/proxiboi69/tetra-bluestation/tdma"
	"github.com/proxiboi69/tetra-bluestation/txreceipt"
)

// dSetupRepeats bounds how many times a group call's D-SETUP is
// repeated for late entry before CMCE stops broadcasting it.
const dSetupRepeats = 4

// dSetupInitialBackupTimeslots is the short grace period after the
// initial D-SETUP before CMCE sends one guaranteed backup copy,
// regardless of whether the initial copy's receipt has settled yet.
const dSetupInitialBackupTimeslots = 8

// lateEntryIntervalTimeslots is the steady-state spacing, in timeslots,
// between later late-entry D-SETUP repeats once the guaranteed backup
// has been sent.
const lateEntryIntervalTimeslots = 360

// lateEntryCycle tracks one group call's outstanding late-entry D-SETUP
// repeat cycle. CMCE retains the TxReceipt of the most recently emitted
// D-SETUP; once the guaranteed backup has gone out, further repeats are
// throttled (held back) as long as that receipt has not reached a final
// state, so a slow link never gets flooded with redundant broadcasts.
type lateEntryCycle struct {
	gssi               uint32
	correlationID      string
	basicService       BasicServiceInformation
	retained           txreceipt.Receipt
	repeatsRemaining   int
	backupSent         bool
	nextEligibleDlTime tdma.Time
}

func newLateEntryCycle(gssi uint32, bsi BasicServiceInformation, receipt txreceipt.Receipt, dlTime tdma.Time) *lateEntryCycle {
	return &lateEntryCycle{
		gssi:               gssi,
		correlationID:      uuid.New().String(),
		basicService:       bsi,
		retained:           receipt,
		repeatsRemaining:   dSetupRepeats,
		nextEligibleDlTime: dlTime.AddTimeslots(dSetupInitialBackupTimeslots),
	}
}

// due reports whether dlTime has reached this cycle's next eligible
// repeat time.
func (c *lateEntryCycle) due(dlTime tdma.Time) bool {
	return !dlTime.Before(c.nextEligibleDlTime)
}

// throttled reports whether the retained receipt is still outstanding,
// meaning a steady-state repeat must be held back this tick.
func (c *lateEntryCycle) throttled() bool {
	return !c.retained.IsInFinalState()
}

// consumeGuaranteedBackup reports whether this due check should emit the
// one guaranteed backup repeat, overriding the throttle. It may only
// fire once per cycle.
func (c *lateEntryCycle) consumeGuaranteedBackup() bool {
	if c.backupSent {
		return false
	}
	c.backupSent = true
	return true
}

// advance retires the cycle's current receipt for a freshly-emitted
// repeat, rescheduling the next eligible time at the steady-state
// interval and counting down the repeats budget. It reports whether the
// cycle is now exhausted and should be dropped.
func (c *lateEntryCycle) advance(receipt txreceipt.Receipt, dlTime tdma.Time) (exhausted bool) {
	c.retained = receipt
	c.repeatsRemaining--
	c.nextEligibleDlTime = dlTime.AddTimeslots(lateEntryIntervalTimeslots)
	return c.repeatsRemaining <= 0
}

// deferThrottled pushes the next eligibility check further out without
// consuming a repeat, since no new D-SETUP was actually sent.
func (c *lateEntryCycle) deferThrottled(dlTime tdma.Time) {
	c.nextEligibleDlTime = dlTime.AddTimeslots(lateEntryIntervalTimeslots)
}
