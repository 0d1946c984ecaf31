package ingest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary cell. Currency symbols and spaces are ignored
// and both "1.234,56" and "1,234.56" are accepted. Empty cells are zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.NewReplacer("$", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(raw))
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unrecognized amount %q", raw)
	}
	return d, nil
}

// parseInstallmentNumber accepts "3" and "3.0" but not "3.5" or "0".
func parseInstallmentNumber(raw string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("unrecognized installment number %q", raw)
	}
	if !d.IsInteger() || !d.IsPositive() {
		return 0, fmt.Errorf("installment number %q must be a positive integer", raw)
	}
	return int(d.IntPart()), nil
}
