// Package money formats whole-rupee LKR amounts for user-facing messages.
package money

import "strconv"

// FormatLKR renders n with thousands separators, e.g. 1000 -> "LKR 1,000".
func FormatLKR(n int64) string {
	return "LKR " + group(n)
}

func group(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var b []byte
		for i, d := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				b = append(b, ',')
			}
			b = append(b, d)
		}
		s = string(b)
	}
	if neg {
		return "-" + s
	}
	return s
}
