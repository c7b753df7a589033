package utils

import "strconv"

// CompactCount renders a counter the way reel cards and profile stats show
// it: values above 999 become thousands with one decimal and a K suffix.
func CompactCount(n int) string {
	if n > 999 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "K"
	}
	return strconv.Itoa(n)
}
