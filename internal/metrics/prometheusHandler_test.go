package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountParsedMarker(t *testing.T) {
	before := testutil.ToFloat64(markersParsedTotal.WithLabelValues("document"))

	CountParsedMarker("document")
	CountParsedMarker("document")
	CountParsedMarker("load_more")

	got := testutil.ToFloat64(markersParsedTotal.WithLabelValues("document"))
	if got != before+2 {
		t.Errorf("document counter got %v, want %v", got, before+2)
	}
}

func TestCountMalformedMarker(t *testing.T) {
	before := testutil.ToFloat64(markersMalformedTotal)

	CountMalformedMarker()

	got := testutil.ToFloat64(markersMalformedTotal)
	if got != before+1 {
		t.Errorf("malformed counter got %v, want %v", got, before+1)
	}
}

func TestAddHeldBackBytes(t *testing.T) {
	before := testutil.ToFloat64(heldBackBytes)

	AddHeldBackBytes(16)
	AddHeldBackBytes(-16)

	got := testutil.ToFloat64(heldBackBytes)
	if got != before {
		t.Errorf("held back gauge got %v, want %v", got, before)
	}
}
