package query

import (
	"reflect"
	"testing"

	"github.com/meito/kensaku/internal/models"
)

func TestExtractNumeric(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantFilters   []models.NumericFilter
		wantRemaining []string
	}{
		{
			name:  "price and length filters keep token order",
			input: "katana price<500000 nagasa>=72",
			wantFilters: []models.NumericFilter{
				{Field: models.FieldPrice, Operator: models.OpLT, Value: 500000},
				{Field: models.FieldLength, Operator: models.OpGTE, Value: 72},
			},
			wantRemaining: []string{"katana"},
		},
		{
			name:  "eur converts to jpy",
			input: "eur<500",
			wantFilters: []models.NumericFilter{
				{Field: models.FieldPrice, Operator: models.OpLT, Value: 80500},
			},
		},
		{
			name:  "usd converts and rounds",
			input: "usd>20000",
			wantFilters: []models.NumericFilter{
				{Field: models.FieldPrice, Operator: models.OpGT, Value: 2960000},
			},
		},
		{
			name:  "yen alias needs no conversion",
			input: "yen<=1000000",
			wantFilters: []models.NumericFilter{
				{Field: models.FieldPrice, Operator: models.OpLTE, Value: 1000000},
			},
		},
		{
			name:  "decimal values parse",
			input: "nagasa>70.5",
			wantFilters: []models.NumericFilter{
				{Field: models.FieldLength, Operator: models.OpGT, Value: 70.5},
			},
		},
		{
			name:  "same field twice is not merged",
			input: "price>100000 price<500000",
			wantFilters: []models.NumericFilter{
				{Field: models.FieldPrice, Operator: models.OpGT, Value: 100000},
				{Field: models.FieldPrice, Operator: models.OpLT, Value: 500000},
			},
		},
		{
			name:          "unknown alias falls through as a literal term",
			input:         "xyz>100",
			wantRemaining: []string{"xyz>100"},
		},
		{
			name:          "unsupported operator shape falls through",
			input:         "price=500",
			wantRemaining: []string{"price=500"},
		},
		{
			name:          "alias without number falls through",
			input:         "price< katana",
			wantRemaining: []string{"price<", "katana"},
		},
		{
			name:          "short tokens pass through unmatched",
			input:         "a price>1000",
			wantFilters:   []models.NumericFilter{{Field: models.FieldPrice, Operator: models.OpGT, Value: 1000}},
			wantRemaining: []string{"a"},
		},
		{
			name:          "input is lowercased first",
			input:         "PRICE>1000",
			wantFilters:   []models.NumericFilter{{Field: models.FieldPrice, Operator: models.OpGT, Value: 1000}},
		},
		{
			name:  "empty input",
			input: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, remaining := ExtractNumeric(tt.input)
			if !reflect.DeepEqual(filters, tt.wantFilters) {
				t.Errorf("filters = %+v, want %+v", filters, tt.wantFilters)
			}
			if !reflect.DeepEqual(remaining, tt.wantRemaining) {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
		})
	}
}

func TestExtractNumeric_neverDropsTokens(t *testing.T) {
	input := "tanto it price>100 gold usd<=50 blah>5x ??"
	filters, remaining := ExtractNumeric(input)
	// Every whitespace token must land in exactly one output.
	total := len(filters) + len(remaining)
	if total != 7 {
		t.Errorf("token count: filters %d + remaining %d = %d, want 7 (%v)",
			len(filters), len(remaining), total, remaining)
	}
}
