// ABOUTME: Explicit-sign number formatting
// ABOUTME: Used for price margins and profit figures where direction matters

package format

import "fmt"

// Signed renders n with an explicit leading sign, "+50" or "-50".
// Zero is rendered as "+0".
func Signed(n int64) string {
	if n < 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("+%d", n)
}

// SignedGrouped renders n with a leading sign and thousands separators.
func SignedGrouped(n int64) string {
	if n < 0 {
		return "-" + GroupedInt(-n)
	}
	return "+" + GroupedInt(n)
}
