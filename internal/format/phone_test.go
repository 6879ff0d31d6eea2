package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPhoneInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"non-digits only", "abc", "+(90)"},
		{"first group grows", "5", "+(90) 5"},
		{"first group full", "531", "+(90) 531"},
		{"second group partial", "53198", "+(90) 531 98"},
		{"third group", "53198244", "+(90) 531 982 44"},
		{"complete", "5319824411", "+(90) 531 982 44 11"},
		{"strips country prefix", "905319824411", "+(90) 531 982 44 11"},
		{"strips leading zero", "05319824411", "+(90) 531 982 44 11"},
		{"strips both prefixes", "9005319824411", "+(90) 531 982 44 11"},
		{"ignores separators", "531-982-44-11", "+(90) 531 982 44 11"},
		{"truncates extra digits", "53198244119999", "+(90) 531 982 44 11"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatPhoneInput(tc.in))
		})
	}
}

func TestFormatPhoneInputUsesFirstTenSignificantDigits(t *testing.T) {
	// Any ≥10-digit input must produce the canonical grouping of exactly the
	// first ten digits that remain after prefix stripping.
	in := "90" + "1234567890" + "555"
	require.Equal(t, "+(90) 123 456 78 90", FormatPhoneInput(in))
}

func TestFormatPhoneDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"canonical passes through", "+(90) 531 982 44 11", "+(90) 531 982 44 11"},
		{"bare ten digits", "5319824411", "+(90) 531 982 44 11"},
		{"twelve digits with country code", "905319824411", "+(90) 531 982 44 11"},
		{"separated digits", "531 982 4411", "+(90) 531 982 44 11"},
		{"too short returned unchanged", "12345", "12345"},
		{"eleven digits with country code too short after strip", "90531982441", "90531982441"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatPhoneDisplay(tc.in))
		})
	}
}
