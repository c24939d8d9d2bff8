package query

import (
	"regexp"
	"strings"

	"github.com/meito/kensaku/internal/models"
)

// tsquery dialect operators understood by the storage layer's full-text
// match operator: & joins independent terms, <-> requires adjacency, and
// :* on a term enables prefix matching. | is valid dialect syntax but the
// builder never emits it.
const (
	opAnd        = " & "
	opFollowedBy = " <-> "
	prefixMarker = ":*"
)

// phrasePattern extracts quoted spans, single or double quoted, greedily
// left to right. An unmatched quote is not a phrase; the quote character
// itself is later escaped away with the other reserved characters.
var phrasePattern = regexp.MustCompile(`["']([^"']+)["']`)

// reservedReplacer blanks every character with meaning in the tsquery
// dialect. User text passes through it before reaching the query string,
// so the only operators in the output are the ones the builder inserts.
var reservedReplacer = strings.NewReplacer(
	"&", " ", "|", " ", "!", " ", "(", " ", ")", " ",
	"<", " ", ">", " ", `\`, " ", "*", " ", "'", " ", `"`, " ",
)

// Builder compiles free search text into the tsquery dialect.
type Builder struct {
	MinTermLength int
	PrefixMatch   bool
}

// NewBuilder returns a Builder with the default minimum term length and
// prefix matching enabled.
func NewBuilder() *Builder {
	return &Builder{MinTermLength: MinTermLength, PrefixMatch: true}
}

// Compile turns free search text into a boolean tsquery. Quoted spans
// become adjacency-matched phrases, in the order their quotes appeared;
// everything else becomes AND-joined terms after them.
func (b *Builder) Compile(text string) models.CompiledQuery {
	trimmed := strings.TrimSpace(text)
	if !searchable(trimmed, b.MinTermLength) {
		return models.EmptyCompiledQuery()
	}
	var phrases []string
	for _, m := range phrasePattern.FindAllStringSubmatch(trimmed, -1) {
		span := strings.TrimSpace(m[1])
		if searchable(span, b.MinTermLength) {
			phrases = append(phrases, span)
		}
	}
	free := phrasePattern.ReplaceAllString(trimmed, " ")
	return b.compileParts(phrases, strings.Fields(free))
}

// compileParts assembles the query from already-separated phrase spans and
// free words. The pipeline compiler calls this directly so that phrase
// spans can come from the original input string.
func (b *Builder) compileParts(phrases, freeWords []string) models.CompiledQuery {
	var parts []string
	var terms []string
	phraseSeen := false

	for _, phrase := range phrases {
		words := b.splitSearchable(phrase)
		if len(words) == 0 {
			continue
		}
		phraseSeen = true
		terms = append(terms, strings.Join(words, " "))
		parts = append(parts, b.joinPhrase(words))
	}
	if len(freeWords) > 0 {
		words := b.splitSearchable(strings.Join(freeWords, " "))
		if len(words) > 0 {
			terms = append(terms, words...)
			parts = append(parts, b.joinTerms(words))
		}
	}
	if len(parts) == 0 {
		return models.EmptyCompiledQuery()
	}

	// Parentheses are only needed to keep a phrase grouped against the
	// surrounding AND; a lone phrase stays bare.
	if len(parts) > 1 {
		for i, part := range parts {
			if strings.Contains(part, opFollowedBy) {
				parts[i] = "(" + part + ")"
			}
		}
	}
	return models.CompiledQuery{
		QueryString:    strings.Join(parts, opAnd),
		IsPhraseSearch: phraseSeen,
		Terms:          terms,
	}
}

// BuildPhrase compiles one quoted span into an adjacency expression.
// Returns "" when no word survives escaping and length filtering.
func (b *Builder) BuildPhrase(phrase string) string {
	return b.joinPhrase(b.splitSearchable(phrase))
}

// BuildTerms compiles independent free words into an AND expression; with
// prefix matching on, every word gets the prefix marker.
func (b *Builder) BuildTerms(words []string) string {
	return b.joinTerms(b.splitSearchable(strings.Join(words, " ")))
}

func (b *Builder) joinPhrase(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		if b.PrefixMatch {
			return words[0] + prefixMarker
		}
		return words[0]
	}
	out := strings.Join(words, opFollowedBy)
	if b.PrefixMatch {
		// Only the last word of a phrase is open-ended.
		out += prefixMarker
	}
	return out
}

func (b *Builder) joinTerms(words []string) string {
	if len(words) == 0 {
		return ""
	}
	if !b.PrefixMatch {
		return strings.Join(words, opAnd)
	}
	suffixed := make([]string, len(words))
	for i, w := range words {
		suffixed[i] = w + prefixMarker
	}
	return strings.Join(suffixed, opAnd)
}

// splitSearchable normalizes and escapes raw text and returns the words
// long enough to search on.
func (b *Builder) splitSearchable(text string) []string {
	cleaned := reservedReplacer.Replace(Normalize(text))
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if searchable(w, b.MinTermLength) {
			words = append(words, w)
		}
	}
	return words
}

// ValidateQueryString checks a compiled tsquery for structural
// well-formedness: balanced parentheses, and no AND/OR operator at either
// end of the string or doubled back to back. It exists to catch builder
// bugs in tests and as a last-resort guard in handlers; a false result
// signals a defect in the builder, never a user input problem.
func ValidateQueryString(q string) bool {
	if strings.TrimSpace(q) == "" {
		return true
	}
	depth := 0
	for _, r := range q {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	if depth != 0 {
		return false
	}
	prevWasOp := true // an operator in first position is malformed
	fields := strings.Fields(q)
	for _, f := range fields {
		isOp := f == "&" || f == "|"
		if isOp && prevWasOp {
			return false
		}
		prevWasOp = isOp
	}
	return !prevWasOp
}
