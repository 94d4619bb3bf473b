package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorToken(t *testing.T) {
	cases := []struct {
		in   string
		want ColorToken
	}{
		{"primary", ColorToken{Raw: "primary", Head: "primary"}},
		{"primary[600]", ColorToken{Raw: "primary[600]", Head: "primary", Level: 600}},
		{"success[subtle]", ColorToken{Raw: "success[subtle]", Head: "success", Subtle: true}},
		{"info[+2]", ColorToken{Raw: "info[+2]", Head: "info", Elevation: 2}},
		{"info[-1]", ColorToken{Raw: "info[-1]", Head: "info", Elevation: -1}},
		{"danger[600|subtle]", ColorToken{Raw: "danger[600|subtle]", Head: "danger", Level: 600, Subtle: true}},
		{"danger[subtle|+3]", ColorToken{Raw: "danger[subtle|+3]", Head: "danger", Subtle: true, Elevation: 3}},
	}
	for _, tc := range cases {
		got := ParseColorToken(tc.in)
		assert.Equal(t, tc.want, got, "token %q", tc.in)
		assert.False(t, got.Fallback(), "token %q", tc.in)
	}
}

func TestParseColorTokenTotalityOnMalformed(t *testing.T) {
	// Malformed tokens never fail; they degrade to direct-lookup fallback.
	for _, in := range []string{
		"", "  ", "[600]", "primary[", "primary[]", "primary[600",
		"primary]600[", "primary[weird]", "primary[99]", "primary[1000]",
		"primary[6oo]", "pri|mary",
	} {
		got := ParseColorToken(in)
		assert.True(t, got.Fallback(), "token %q should be a fallback", in)
		assert.Equal(t, in, got.Raw)
	}
}

func TestParseStyleToken(t *testing.T) {
	cases := []struct {
		in          string
		wantColor   string
		wantVariant string
	}{
		{"success-outline", "success", "outline"},
		{"outline-success", "success", "outline"},
		{"success", "success", "solid"},
		{"outline", "primary", "outline"},
		{"", "primary", "solid"},
		{"danger-link", "danger", "link"},
		{"info-round", "info", "round"},
		{"primary[600]-outline", "primary[600]", "outline"},
		{"striped-warning", "warning", "striped"},
		{"inverse-light", "light", "inverse"},
	}
	for _, tc := range cases {
		color, variant := ParseStyleToken(tc.in)
		assert.Equal(t, tc.wantColor, color, "token %q", tc.in)
		assert.Equal(t, tc.wantVariant, variant, "token %q", tc.in)
	}
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindButton, ParseKind("Button"))
	assert.Equal(t, KindButton, ParseKind("TButton"))
	assert.Equal(t, KindCheckbutton, ParseKind("tcheckbutton"))
	assert.Equal(t, KindTreeview, ParseKind("Treeview"))
	assert.Equal(t, KindTreeview, ParseKind("TTreeview"))
	assert.Equal(t, KindUnknown, ParseKind("Gizmo"))
}

func TestStyleName(t *testing.T) {
	assert.Equal(t, "success.Button", StyleName("success", "solid", KindButton))
	assert.Equal(t, "success.outline.Button", StyleName("success", "outline", KindButton))
	assert.Equal(t, "primary.Entry", StyleName("primary", "", KindEntry))
}
