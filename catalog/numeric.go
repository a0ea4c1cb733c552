package catalog

import "strconv"

// ParseAmount normalizes a free-text numeric field (price, size, room
// counts) into a non-negative number. Anything outside [0-9.-] is stripped
// before parsing, so "350 000 €" and "75m²" both resolve.
//
// The second return is false when the remainder does not parse or is
// negative. Callers treat that as failing the bound check rather than
// erroring: an unparsable price must not match a max-price filter, and the
// filter pass must never abort on one bad document.
func ParseAmount(s string) (float64, bool) {
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
