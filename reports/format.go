package reports

import (
	"fmt"
	"strings"
)

// FormatRupiah renders an amount the way the dashboard cards do: billions
// as "Rp x.xM", millions as "Rp x.xjt", anything smaller grouped with
// thousand separators.
func FormatRupiah(x float64) string {
	switch {
	case x >= 1_000_000_000:
		return fmt.Sprintf("Rp %.1fM", x/1_000_000_000)
	case x >= 1_000_000:
		return fmt.Sprintf("Rp %.1fjt", x/1_000_000)
	default:
		return "Rp " + groupThousands(fmt.Sprintf("%.0f", x))
	}
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
