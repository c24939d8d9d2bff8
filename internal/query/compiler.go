package query

import (
	"strings"

	"github.com/meito/kensaku/internal/config"
	"github.com/meito/kensaku/internal/models"
)

// Compiler runs the full pipeline over one raw search string: numeric
// extraction, then semantic extraction, then tsquery compilation of the
// leftovers. A Compiler is immutable after construction and safe for
// concurrent use.
type Compiler struct {
	builder Builder
}

// NewCompiler builds a Compiler from the query configuration.
func NewCompiler(cfg *config.QueryConfig) *Compiler {
	return &Compiler{builder: Builder{
		MinTermLength: cfg.MinTermLength,
		PrefixMatch:   cfg.PrefixMatchOrDefault(),
	}}
}

// WithPrefixMatch returns a copy of the compiler with prefix matching
// switched on or off, for per-request overrides.
func (c *Compiler) WithPrefixMatch(enabled bool) *Compiler {
	clone := *c
	clone.builder.PrefixMatch = enabled
	return &clone
}

// Compile turns one raw search string into a query plan. It never fails;
// anything unparseable degrades to free-text terms.
func (c *Compiler) Compile(raw string) models.QueryPlan {
	// Quoted spans are lifted from the original string first, so their
	// words can never be consumed as vocabulary or numeric tokens.
	var phrases []string
	for _, m := range phrasePattern.FindAllStringSubmatch(raw, -1) {
		span := strings.TrimSpace(m[1])
		if searchable(span, c.builder.MinTermLength) {
			phrases = append(phrases, span)
		}
	}
	unquoted := phrasePattern.ReplaceAllString(raw, " ")

	numericFilters, words := ExtractNumeric(unquoted)
	semanticFilters, freeTerms := ExtractSemantic(strings.Join(words, " "))

	if numericFilters == nil {
		numericFilters = []models.NumericFilter{}
	}
	return models.QueryPlan{
		RawQuery:        raw,
		NumericFilters:  numericFilters,
		SemanticFilters: semanticFilters,
		CompiledQuery:   c.builder.compileParts(phrases, freeTerms),
	}
}
