package models

// CompiledQuery is the boolean tsquery built from the free-text part of a
// search, plus metadata about how it was built. QueryString is passed
// verbatim to the storage layer's full-text match operator.
type CompiledQuery struct {
	QueryString    string   `json:"query_string"`
	IsPhraseSearch bool     `json:"is_phrase_search"`
	Terms          []string `json:"terms"`
	IsEmpty        bool     `json:"is_empty"`
}

// EmptyCompiledQuery is the result for input with no usable terms. This is
// a normal outcome, not an error.
func EmptyCompiledQuery() CompiledQuery {
	return CompiledQuery{IsEmpty: true, Terms: []string{}}
}

// QueryPlan is the full compiler output for one raw search string. The
// caller translates numeric filters into range predicates, semantic
// filters into exact-match predicates, and the compiled query into a
// full-text match.
type QueryPlan struct {
	RawQuery        string          `json:"raw_query"`
	NumericFilters  []NumericFilter `json:"numeric_filters"`
	SemanticFilters SemanticFilters `json:"semantic_filters"`
	CompiledQuery   CompiledQuery   `json:"compiled_query"`
}
