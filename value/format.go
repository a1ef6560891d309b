package value

import "strconv"

// formatInt renders an Int value without a fractional part, per spec §6
// ("Int values emitted without a fractional part").
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatFloat renders a Float value always with a fractional part, per
// spec §6 ("Float values always with one").
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' || c == 'N' || c == 'n' { // N/n catch NaN/Inf
			return s
		}
	}
	return s + ".0"
}
