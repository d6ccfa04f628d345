package ecotips

import (
	"math"
	"testing"
)

func TestTips(t *testing.T) {
	got := Tips()
	if len(got) != 3 {
		t.Fatalf("expected 3 tips, got %d", len(got))
	}
	got[0] = "changed"
	if Tips()[0] == "changed" {
		t.Error("Tips must return a copy")
	}
}

func TestCompareModes(t *testing.T) {
	got := CompareModes(1000)
	want := map[string]float64{"bus": 30, "train": 35, "car": 200}
	if len(got) != len(want) {
		t.Fatalf("expected %d modes, got %d", len(want), len(got))
	}
	for i, m := range got {
		if math.Abs(m.CO2EmissionsKg-want[m.Mode]) > 1e-9 {
			t.Errorf("%s = %f, want %f", m.Mode, m.CO2EmissionsKg, want[m.Mode])
		}
		if i > 0 && got[i-1].CO2EmissionsKg > m.CO2EmissionsKg {
			t.Errorf("modes not ordered by emissions: %+v", got)
		}
	}
}

func TestCompareModes_NegativeDistance(t *testing.T) {
	for _, m := range CompareModes(-5) {
		if m.CO2EmissionsKg != 0 {
			t.Errorf("%s = %f, want 0", m.Mode, m.CO2EmissionsKg)
		}
	}
}
