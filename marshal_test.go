package ka3305p

import (
	"errors"
	"testing"
)

func TestDecodeLatin1(t *testing.T) {
	tests := []struct {
		Name     string
		Input    []byte
		Expected string
	}{
		{"ascii", []byte("KORAD"), "KORAD"},
		{"empty", nil, ""},
		{"high bytes", []byte{0xB5, 0x56}, "µV"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := decodeLatin1(test.Input); got != test.Expected {
				t.Fatalf("expected %q, got %q", test.Expected, got)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		Name     string
		Input    []byte
		Expected float64
		Error    bool
	}{
		{Name: "voltage", Input: []byte("13.37"), Expected: 13.37},
		{Name: "current", Input: []byte("1.500"), Expected: 1.5},
		{Name: "nul padded", Input: []byte("05.00\x00"), Expected: 5},
		{Name: "crlf padded", Input: []byte("0.750\r\n"), Expected: 0.75},
		{Name: "garbage", Input: []byte("bogus"), Error: true},
		{Name: "only padding", Input: []byte("\x00\x00"), Error: true},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			v, err := parseDecimal(test.Input)
			if test.Error {
				if err == nil {
					t.Fatalf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if v != test.Expected {
				t.Fatalf("expected %v, got %v", test.Expected, v)
			}
		})
	}
}

func TestParseDecimalEmptyIsNoResponse(t *testing.T) {
	if _, err := parseDecimal(nil); !errors.Is(err, ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
}

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		Name     string
		Input    byte
		Expected Status
	}{
		{"all clear", 0x00, Status{Mode: ModeCC, Output: OutputOff}},
		{"bit 0", 0x01, Status{Mode: ModeCV, Output: OutputOff}},
		{"bit 6", 0x40, Status{Mode: ModeCC, Output: OutputOn}},
		{"bits 0 and 6", 0x41, Status{Mode: ModeCV, Output: OutputOn}},
		{"unmodeled bits ignored", 0xBE, Status{Mode: ModeCC, Output: OutputOff}},
		{"all set", 0xFF, Status{Mode: ModeCV, Output: OutputOn}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := decodeStatus(test.Input); got != test.Expected {
				t.Fatalf("expected %v, got %v", test.Expected, got)
			}
		})
	}
}
