package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	groupPrinter = message.NewPrinter(language.English)
	titleCaser   = cases.Title(language.English)
)

// FormatGrouped renders n with thousands separators, e.g. 1234567 -> "1,234,567"
func FormatGrouped(n int64) string {
	return groupPrinter.Sprintf("%d", n)
}

// FormatCompact renders n the way the game HUD does: 999, 1.2K, 3.4M, 5.6B
func FormatCompact(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return compact(n, 1_000_000_000, "B")
	case n >= 1_000_000:
		return compact(n, 1_000_000, "M")
	case n >= 1_000:
		return compact(n, 1_000, "K")
	default:
		return strconv.FormatInt(n, 10)
	}
}

func compact(n, unit int64, suffix string) string {
	whole := n / unit
	tenths := (n % unit) * 10 / unit
	return strconv.FormatInt(whole, 10) + "." + strconv.FormatInt(tenths, 10) + suffix
}

// TitleCase turns an identifier like "boost-multiplier" into "Boost Multiplier"
func TitleCase(id string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(id, "-", " "), "_", " "))
}
