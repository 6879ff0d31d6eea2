package format

import "strings"

// phone digits group as XXX XXX XX XX after the +(90) prefix.
var phoneGroups = [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}

// FormatPhoneInput normalizes raw user input into the canonical phone form,
// emitting a partial string while fewer than ten digits are available so a
// field can re-format on every keystroke. Non-digits are stripped, one
// leading country prefix "90" and one leading "0" are dropped, and anything
// past ten significant digits is ignored.
func FormatPhoneInput(raw string) string {
	if raw == "" {
		return ""
	}
	d := digitsOf(raw)
	d = strings.TrimPrefix(d, "90")
	d = strings.TrimPrefix(d, "0")
	if len(d) > 10 {
		d = d[:10]
	}

	out := "+(90)"
	for _, g := range phoneGroups {
		if len(d) <= g[0] {
			break
		}
		end := g[1]
		if len(d) < end {
			end = len(d)
		}
		out += " " + d[g[0]:end]
	}
	return out
}

// FormatPhoneDisplay renders a stored phone value for display. A value that
// already contains a parenthesis is canonical and returned as is. Otherwise
// the digits are extracted, a leading "90" country code is stripped once when
// more than ten digits remain, and the first ten digits are grouped
// canonically. Legacy values with fewer than ten digits come back unchanged.
func FormatPhoneDisplay(stored string) string {
	if stored == "" {
		return ""
	}
	if strings.Contains(stored, "(") {
		return stored
	}
	d := digitsOf(stored)
	if len(d) > 10 && strings.HasPrefix(d, "90") {
		d = d[2:]
	}
	if len(d) < 10 {
		return stored
	}
	out := "+(90)"
	for _, g := range phoneGroups {
		out += " " + d[g[0]:g[1]]
	}
	return out
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
