// Package format converts employee fields between their stored canonical
// representations and the representations used for editing and display.
// Dates are stored as day/month/year and edited as ISO year-month-day;
// phone numbers are stored in the +(90) XXX XXX XX XX form.
package format

import "strings"

// ToISODate converts a stored day/month/year date into ISO year-month-day
// for editing. Input already containing a dash is assumed ISO and passed
// through unchanged. Empty or malformed input yields "".
func ToISODate(v string) string {
	if v == "" {
		return ""
	}
	if strings.Contains(v, "-") {
		return v
	}
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return ""
	}
	d, m, y := parts[0], parts[1], parts[2]
	return pad(y, 4) + "-" + pad(m, 2) + "-" + pad(d, 2)
}

// ToStorageDate is the inverse of ToISODate: ISO input becomes
// day/month/year, slash-separated input passes through unchanged.
func ToStorageDate(v string) string {
	if v == "" {
		return ""
	}
	if strings.Contains(v, "/") {
		return v
	}
	parts := strings.Split(v, "-")
	if len(parts) != 3 {
		return ""
	}
	y, m, d := parts[0], parts[1], parts[2]
	return pad(d, 2) + "/" + pad(m, 2) + "/" + pad(y, 4)
}

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
