package common

import (
	"math"
	"testing"
)

func TestParseID_RoundTrip(t *testing.T) {
	ids := []uint64{0, 1, 1 << 22, 297072620217139202, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64}
	for _, id := range ids {
		parsed, err := ParseID(FormatID(id))
		if err != nil {
			t.Fatalf("ParseID(FormatID(%d)): %v", id, err)
		}
		if parsed != id {
			t.Errorf("Round trip changed %d to %d", id, parsed)
		}
	}
}

func TestParseID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "-1", "1.5", "18446744073709551616"} {
		if _, err := ParseID(raw); err == nil {
			t.Errorf("ParseID(%q): expected error", raw)
		}
	}
}

func TestIDToDB_RoundTrip(t *testing.T) {
	// IDs above MaxInt64 must survive storage via bit reinterpretation.
	ids := []uint64{0, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64}
	for _, id := range ids {
		if got := DBToID(IDToDB(id)); got != id {
			t.Errorf("DB round trip changed %d to %d", id, got)
		}
	}
}

func TestIDToDB_HighBitGoesNegative(t *testing.T) {
	if IDToDB(math.MaxUint64) != -1 {
		t.Errorf("Expected MaxUint64 to store as -1, got %d", IDToDB(math.MaxUint64))
	}
}
