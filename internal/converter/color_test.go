package converter

import (
	"strconv"
	"testing"
)

func TestToHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "#808080"},
		{"garbage", "#808080"},
		{"-5", "#808080"},
		{"0", "#000000"},
		{"255", "#0000FF"},
		{"8421504", "#808080"},
		{"16777215", "#FFFFFF"},
		// Values beyond 24 bits are formatted bit-exactly, not clamped.
		{"16777216", "#1000000"},
	}

	for _, c := range cases {
		if got := ToHex(c.in); got != c.want {
			t.Errorf("ToHex(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToHexIdempotent(t *testing.T) {
	// Reinterpreting a ToHex result as a decimal of the same value must
	// produce the same hex string.
	for _, in := range []string{"0", "255", "65280", "16711680", "8421504"} {
		first := ToHex(in)

		n, err := strconv.ParseInt(first[1:], 16, 64)
		if err != nil {
			t.Fatalf("ToHex(%q) produced unparsable hex %q", in, first)
		}
		second := ToHex(strconv.FormatInt(n, 10))
		if second != first {
			t.Errorf("ToHex not stable for %q: %q then %q", in, first, second)
		}
	}
}
