// ABOUTME: Currency formatting helpers for coin amounts
// ABOUTME: Abbreviates large values into the K/M/B notation used on price charts

package format

import "fmt"

// Coins reformats a coin amount into abbreviated currency,
// e.g. 550000 -> "550.0 K gp".
func Coins(amount float64) string {
	switch {
	case amount < 1_000:
		return fmt.Sprintf("%.0f gp", amount)
	case amount < 1_000_000:
		return fmt.Sprintf("%.1f K gp", amount/1_000)
	case amount < 1_000_000_000:
		return fmt.Sprintf("%.1f M gp", amount/1_000_000)
	default:
		return fmt.Sprintf("%.2f B gp", amount/1_000_000_000)
	}
}

// GroupedInt renders n with thousands separators.
func GroupedInt(n int64) string {
	if n < 0 {
		return "-" + GroupedInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", GroupedInt(n/1000), n%1000)
}
