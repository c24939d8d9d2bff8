package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/meito/kensaku/internal/models"
)

// numericTokenPattern matches the <alias><op><number> token shape. A shape
// match alone does not consume the token: the alias must also resolve,
// otherwise the token stays in the free text — "xyz>100" with an unknown
// alias is a literal search term, not an error.
var numericTokenPattern = regexp.MustCompile(`^([a-z]+)(>=|<=|>|<)([0-9]+(?:\.[0-9]+)?)$`)

// ExtractNumeric scans whitespace-delimited tokens for range filters on
// the length and price fields. Foreign currency amounts are converted into
// JPY via the static rate table and rounded to the nearest whole yen.
// Unmatched tokens come back in order as remaining words; nothing is
// dropped.
func ExtractNumeric(text string) ([]models.NumericFilter, []string) {
	var filters []models.NumericFilter
	var remaining []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if !searchable(tok, MinTermLength) {
			remaining = append(remaining, tok)
			continue
		}
		f, ok := matchNumericToken(tok)
		if !ok {
			remaining = append(remaining, tok)
			continue
		}
		filters = append(filters, f)
	}
	return filters, remaining
}

func matchNumericToken(tok string) (models.NumericFilter, bool) {
	m := numericTokenPattern.FindStringSubmatch(tok)
	if m == nil {
		return models.NumericFilter{}, false
	}
	alias, opSpelling, number := m[1], m[2], m[3]
	op, ok := numericOperators[opSpelling]
	if !ok {
		return models.NumericFilter{}, false
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return models.NumericFilter{}, false
	}
	if field, ok := numericFieldAliases[alias]; ok {
		return models.NumericFilter{Field: field, Operator: op, Value: value}, true
	}
	if rate, ok := currencyRates[alias]; ok {
		return models.NumericFilter{
			Field:    models.FieldPrice,
			Operator: op,
			Value:    math.Round(value * rate),
		}, true
	}
	return models.NumericFilter{}, false
}
