package ka3305p

import (
	"reflect"
	"testing"
)

func TestKD3305SetOutput(t *testing.T) {
	tx := &fakeTransport{}
	c := NewKD3305(tx)

	if err := c.SetOutput(t.Context(), true); err != nil {
		t.Fatal(err)
	}
	if err := c.SetOutput(t.Context(), false); err != nil {
		t.Fatal(err)
	}

	expected := []string{"OUT1:1\nOUT2:1", "OUT1:0\nOUT2:0"}
	if !reflect.DeepEqual(tx.writes, expected) {
		t.Fatalf("expected writes %q, got %q", expected, tx.writes)
	}
}

func TestKD3305SetChannelOutput(t *testing.T) {
	tx := &fakeTransport{}
	c := NewKD3305(tx)

	if err := c.SetChannelOutput(t.Context(), Channel2, true); err != nil {
		t.Fatal(err)
	}
	if err := c.SetChannelOutput(t.Context(), Channel1, false); err != nil {
		t.Fatal(err)
	}

	expected := []string{"OUT2:1", "OUT1:0"}
	if !reflect.DeepEqual(tx.writes, expected) {
		t.Fatalf("expected writes %q, got %q", expected, tx.writes)
	}

	checkArgumentError(t, c.SetChannelOutput(t.Context(), 3, true))
	if len(tx.writes) != 2 {
		t.Fatalf("expected no write for an invalid channel, got %v", tx.writes)
	}
}

func TestKD3305SetBeep(t *testing.T) {
	tx := &fakeTransport{}
	c := NewKD3305(tx)

	if err := c.SetBeep(t.Context(), true); err != nil {
		t.Fatal(err)
	}
	if err := c.SetBeep(t.Context(), false); err != nil {
		t.Fatal(err)
	}

	expected := []string{"BEEP1", "BEEP0"}
	if !reflect.DeepEqual(tx.writes, expected) {
		t.Fatalf("expected writes %q, got %q", expected, tx.writes)
	}
}

// The embedded client still drives the shared command set.
func TestKD3305InheritsBaseCommands(t *testing.T) {
	tx := &fakeTransport{}
	c := NewKD3305(tx)

	if err := c.SetVoltage(t.Context(), Channel1, 13.37); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tx.writes, []string{"VSET1:13.37"}) {
		t.Fatalf("unexpected writes: %q", tx.writes)
	}
}
