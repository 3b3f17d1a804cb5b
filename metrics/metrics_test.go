package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestUnimplementedLogIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(PDUsUnimplemented.WithLabelValues("Mm", "UAuthentication"))
	UnimplementedLog("Mm", "UAuthentication")
	after := testutil.ToFloat64(PDUsUnimplemented.WithLabelValues("Mm", "UAuthentication"))

	if after != before+1 {
		t.Errorf("expected counter to increment by 1, went from %v to %v", before, after)
	}
}

func TestPDUsDroppedIncrements(t *testing.T) {
	before := testutil.ToFloat64(PDUsDropped)
	PDUsDropped.Inc()
	after := testutil.ToFloat64(PDUsDropped)

	if after != before+1 {
		t.Errorf("expected PDUsDropped to increment by 1, went from %v to %v", before, after)
	}
}
