package ka3305p

import (
	"strconv"
	"strings"

	"github.com/kellegous/poop"
)

// decodeLatin1 maps each reply byte to the code point with the same value.
// The firmware emits Latin-1, so a byte-per-rune mapping is exact.
func decodeLatin1(data []byte) string {
	rs := make([]rune, len(data))
	for i, b := range data {
		rs[i] = rune(b)
	}
	return string(rs)
}

// trimReply strips the NUL padding and line endings some firmware revisions
// append to query replies.
func trimReply(s string) string {
	return strings.Trim(s, "\x00\r\n ")
}

// parseDecimal parses a fixed-point decimal reply such as "13.37" or "1.500".
func parseDecimal(data []byte) (float64, error) {
	s := trimReply(decodeLatin1(data))
	if s == "" {
		return 0, ErrNoResponse
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, poop.Newf("malformed decimal reply %q", s)
	}
	return v, nil
}

// decodeStatus decodes the composite status byte: bit 0 selects the
// regulation mode, bit 6 the output state. The remaining bits are
// instrument specific and ignored.
func decodeStatus(b byte) Status {
	var s Status
	if b&(1<<0) != 0 {
		s.Mode = ModeCV
	}
	if b&(1<<6) != 0 {
		s.Output = OutputOn
	}
	return s
}
