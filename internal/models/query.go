package models

import (
	"fmt"
	"unicode/utf8"
)

// MaxQueryRunes bounds the raw search input accepted over the API. The
// compiler itself has no limit; the bound belongs to its callers.
const MaxQueryRunes = 256

// CompileRequest is the body of a compile API call.
type CompileRequest struct {
	Query       string `json:"query"`
	PrefixMatch *bool  `json:"prefix_match,omitempty"` // nil means use the server default
}

// Validate checks the request size. Empty queries are legal and compile to
// an empty plan, so only oversized input is rejected.
func (r *CompileRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Query); n > MaxQueryRunes {
		return fmt.Errorf("query is %d characters, limit is %d", n, MaxQueryRunes)
	}
	return nil
}
