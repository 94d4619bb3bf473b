package colorutil

import (
	"math"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#0d6efd", "#0d6efd"},
		{"0d6efd", "#0d6efd"},
		{"#FFF", "#ffffff"},
		{"f80", "#ff8800"},
		{"#000000", "#000000"},
		{"  #2c3e50 ", "#2c3e50"},
	}
	for _, tc := range cases {
		c, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if c.Hex() != tc.want {
			t.Errorf("Parse(%q).Hex() = %q, want %q", tc.in, c.Hex(), tc.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "zzzzzz", "#1234567", "#gg0000", "0d6ef"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		} else if _, ok := err.(*FormatError); !ok {
			t.Errorf("Parse(%q) error type = %T, want *FormatError", in, err)
		}
	}
}

func TestHexRoundTripExhaustiveChannel(t *testing.T) {
	// Every value of a single channel must survive Hex/Parse unchanged.
	for v := 0; v <= 255; v++ {
		c := Color{R: uint8(v), G: 0x42, B: 0x99}
		back, err := Parse(c.Hex())
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.Hex(), err)
		}
		if back != c {
			t.Fatalf("round trip of %v gave %v", c, back)
		}
	}
}

func TestLightenDarkenEndpoints(t *testing.T) {
	base := MustParse("#0d6efd")

	if got := base.Lighten(0); got != base {
		t.Errorf("Lighten(0) = %v, want identity", got)
	}
	if got := base.Lighten(1); got != White {
		t.Errorf("Lighten(1) = %v, want white", got)
	}
	if got := base.Darken(0); got != base {
		t.Errorf("Darken(0) = %v, want identity", got)
	}
	if got := base.Darken(1); got != Black {
		t.Errorf("Darken(1) = %v, want black", got)
	}
}

func TestMixEndpointsAndMidpoint(t *testing.T) {
	a := MustParse("#000000")
	b := MustParse("#ffffff")

	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix(a,b,0) = %v, want a", got)
	}
	if got := Mix(a, b, 1); got != b {
		t.Errorf("Mix(a,b,1) = %v, want b", got)
	}
	mid := Mix(a, b, 0.5)
	if mid.R != 128 || mid.G != 128 || mid.B != 128 {
		t.Errorf("Mix midpoint = %v, want #808080", mid)
	}
}

func TestLuminanceRange(t *testing.T) {
	if l := Black.Luminance(); l != 0 {
		t.Errorf("black luminance = %f, want 0", l)
	}
	if l := White.Luminance(); math.Abs(l-1) > 1e-9 {
		t.Errorf("white luminance = %f, want 1", l)
	}
	// Pure green outweighs pure red outweighs pure blue under BT.601.
	red := Color{R: 255}
	green := Color{G: 255}
	blue := Color{B: 255}
	if !(green.Luminance() > red.Luminance() && red.Luminance() > blue.Luminance()) {
		t.Errorf("luminance ordering wrong: g=%f r=%f b=%f",
			green.Luminance(), red.Luminance(), blue.Luminance())
	}
}

func TestBestForegroundBlackWhiteTable(t *testing.T) {
	// Representative backgrounds spanning the luminance range. Light
	// backgrounds must pick black text, dark backgrounds white text.
	cases := []struct {
		bg        string
		wantBlack bool
	}{
		{"#ffffff", true},
		{"#f8f9fa", true},
		{"#ffc107", true},
		{"#ecf0f1", true},
		{"#18bc9c", true},
		{"#95a5a6", true},
		{"#0d6efd", false},
		{"#2c3e50", false},
		{"#343a40", false},
		{"#dc3545", false},
		{"#6f42c1", false},
		{"#000000", false},
	}
	for _, tc := range cases {
		bg := MustParse(tc.bg)
		got := BestForeground(bg, []Color{Black, White})
		wantWhite := !tc.wantBlack
		if (got == Black) != tc.wantBlack {
			t.Errorf("BestForeground(%s) = %v, want black=%v white=%v",
				tc.bg, got.Hex(), tc.wantBlack, wantWhite)
		}
		// Sanity: the contract is luminance-threshold equivalent for a
		// black/white candidate pair.
		if (bg.Luminance() > 0.5) != tc.wantBlack {
			t.Errorf("table entry %s disagrees with luminance %f", tc.bg, bg.Luminance())
		}
	}
}

func TestBestForegroundEmptyCandidates(t *testing.T) {
	bg := MustParse("#123456")
	if got := BestForeground(bg, nil); got != bg {
		t.Errorf("empty candidates should return background, got %v", got)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#0d6efd", "#e74c3c", "#18bc9c", "#222222", "#f39c12"} {
		c := MustParse(hex)
		h, s, l := c.HSL()
		back := FromHSL(h, s, l)
		// Allow one unit of rounding slack per channel.
		if absDiff(back.R, c.R) > 1 || absDiff(back.G, c.G) > 1 || absDiff(back.B, c.B) > 1 {
			t.Errorf("HSL round trip of %s gave %s", hex, back.Hex())
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
