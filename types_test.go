package ka3305p

import "testing"

func TestChannelValid(t *testing.T) {
	valid := map[Channel]bool{
		Channel1: true,
		Channel2: true,
	}
	for ch := Channel(-2); ch <= 4; ch++ {
		if got := ch.Valid(); got != valid[ch] {
			t.Errorf("Channel(%d).Valid() = %v, expected %v", ch, got, valid[ch])
		}
	}
}

func TestPanelValid(t *testing.T) {
	for p := Panel(-2); p <= 8; p++ {
		expected := p >= 1 && p <= 5
		if got := p.Valid(); got != expected {
			t.Errorf("Panel(%d).Valid() = %v, expected %v", p, got, expected)
		}
	}
}

func TestTrackingModeValid(t *testing.T) {
	valid := map[TrackingMode]bool{
		TrackingIndependent: true,
		TrackingSeries:      true,
		TrackingParallel:    true,
	}
	for m := TrackingMode(-2); m <= 4; m++ {
		if got := m.Valid(); got != valid[m] {
			t.Errorf("TrackingMode(%d).Valid() = %v, expected %v", m, got, valid[m])
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		Got      string
		Expected string
	}{
		{ModeCC.String(), "CC"},
		{ModeCV.String(), "CV"},
		{OutputOff.String(), "Off"},
		{OutputOn.String(), "On"},
		{TrackingIndependent.String(), "independent"},
		{TrackingSeries.String(), "series"},
		{TrackingParallel.String(), "parallel"},
		{Channel2.String(), "2"},
		{Status{Mode: ModeCV, Output: OutputOn}.String(), "CV/On"},
	}

	for _, test := range tests {
		if test.Got != test.Expected {
			t.Errorf("expected %q, got %q", test.Expected, test.Got)
		}
	}
}
