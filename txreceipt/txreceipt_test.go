package txreceipt

import "testing"

func TestReceiptObservesReporterTransitions(t *testing.T) {
	receipt, reporter := New(true)

	if got := receipt.GetState(); got != Pending {
		t.Fatalf("expected Pending, got %v", got)
	}
	if receipt.IsTransmitted() {
		t.Fatalf("must not be transmitted before mark")
	}
	if receipt.IsInFinalState() {
		t.Fatalf("Pending is never final")
	}

	reporter.MarkTransmitted()
	if !receipt.IsTransmitted() {
		t.Fatalf("expected transmitted after MarkTransmitted")
	}
	if receipt.IsAcknowledged() {
		t.Fatalf("must not be acknowledged yet")
	}
	if receipt.IsInFinalState() {
		t.Fatalf("Transmitted with expectsAck=true is not final")
	}

	reporter.MarkAcknowledged()
	if !receipt.IsAcknowledged() {
		t.Fatalf("expected acknowledged after MarkAcknowledged")
	}
	if !receipt.IsInFinalState() {
		t.Fatalf("Acknowledged must be final")
	}
}

func TestTransmittedIsFinalWithoutAckExpectation(t *testing.T) {
	receipt, reporter := New(false)
	reporter.MarkTransmitted()
	if !receipt.IsInFinalState() {
		t.Fatalf("Transmitted must be final when expectsAck=false")
	}
}

func TestDiscardedIsFinal(t *testing.T) {
	receipt, reporter := New(false)
	reporter.MarkDiscarded()
	if got := receipt.GetState(); got != Discarded {
		t.Fatalf("expected Discarded, got %v", got)
	}
	if !receipt.IsInFinalState() {
		t.Fatalf("Discarded must be final")
	}
}

func TestLostIsFinal(t *testing.T) {
	receipt, reporter := New(true)
	reporter.MarkTransmitted()
	reporter.MarkLost()
	if got := receipt.GetState(); got != Lost {
		t.Fatalf("expected Lost, got %v", got)
	}
	if !receipt.IsInFinalState() {
		t.Fatalf("Lost must be final")
	}
}

func TestClonedReporterSharesState(t *testing.T) {
	receipt, reporter := New(true)
	clone := reporter.Clone()
	clone.MarkTransmitted()
	if !receipt.IsTransmitted() {
		t.Fatalf("mark via clone must be visible through the original receipt")
	}
}

// S3: a double MarkTransmitted is a caller programming fault and must panic.
func TestDoubleMarkTransmittedPanics(t *testing.T) {
	_, reporter := New(true)
	reporter.MarkTransmitted()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on second MarkTransmitted")
		}
	}()
	reporter.MarkTransmitted()
}

// S4: MarkAcknowledged is illegal when the receipt does not expect an ACK.
func TestMarkAcknowledgedWithoutAckExpectationPanics(t *testing.T) {
	_, reporter := New(false)
	reporter.MarkTransmitted()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic marking acknowledged without expectsAck")
		}
	}()
	reporter.MarkAcknowledged()
}

func TestMarkAcknowledgedFromPendingPanics(t *testing.T) {
	_, reporter := New(true)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic marking acknowledged from Pending")
		}
	}()
	reporter.MarkAcknowledged()
}

func TestMarkLostWithoutAckExpectationPanics(t *testing.T) {
	_, reporter := New(false)
	reporter.MarkTransmitted()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic marking lost without expectsAck")
		}
	}()
	reporter.MarkLost()
}

func TestMarkDiscardedAfterTransmittedPanics(t *testing.T) {
	_, reporter := New(false)
	reporter.MarkTransmitted()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic marking discarded from Transmitted")
		}
	}()
	reporter.MarkDiscarded()
}

func TestStateStringer(t *testing.T) {
	cases := map[State]string{
		Pending:      "Pending",
		Discarded:    "Discarded",
		Transmitted:  "Transmitted",
		Lost:         "Lost",
		Acknowledged: "Acknowledged",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("state %d: expected %q, got %q", state, want, got)
		}
	}
}
