package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultProvider = "Mutual"
	UnknownProvider = "Desconocido"
)

type providerVariant struct {
	tokens    []string
	canonical string
}

// providerRule maps every spelling of a brand to its canonical names. Variants
// are checked in order and the first one with a matching token wins.
type providerRule struct {
	brand    string
	variants []providerVariant
}

var providerRules = []providerRule{
	{
		brand: "SANCOR",
		variants: []providerVariant{
			{tokens: []string{"UNO", "1"}, canonical: "Sancor 1"},
			{tokens: []string{"DOS", "2"}, canonical: "Sancor 2"},
			{tokens: []string{"TRES", "3"}, canonical: "Sancor 3"},
			{tokens: []string{"CUATRO", "4"}, canonical: "Sancor 4"},
			{tokens: []string{"CINCO", "5"}, canonical: "Sancor 5"},
			{tokens: []string{"SEIS", "6"}, canonical: "Sancor 6"},
			{tokens: []string{"SIETE", "7"}, canonical: "Sancor 7"},
			{tokens: []string{"OCHO", "8"}, canonical: "Sancor 8"},
		},
	},
}

// NormalizeProvider folds free-text provider names onto canonical identifiers.
// Names no rule recognizes come back uppercased and trimmed.
func NormalizeProvider(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "" {
		return UnknownProvider
	}

	folded := foldAccents(upper)
	for _, rule := range providerRules {
		if !strings.Contains(folded, rule.brand) {
			continue
		}
		for _, v := range rule.variants {
			for _, token := range v.tokens {
				if strings.Contains(folded, token) {
					return v.canonical
				}
			}
		}
	}
	return upper
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
