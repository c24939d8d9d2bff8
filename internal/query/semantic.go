package query

import (
	"strings"

	"github.com/meito/kensaku/internal/models"
)

// ExtractSemantic scans text for domain vocabulary and turns recognized
// terms into exact-match filters. Multi-word phrases are consumed before
// single words, and a word can feed only one filter class; the priority
// order is certification, category, item type, signature status, province.
// Unrecognized words come back in order as remaining terms.
func ExtractSemantic(text string) (models.SemanticFilters, []string) {
	var filters models.SemanticFilters
	working := Normalize(text)

	// Phrase passes run on the whole working text so that component words
	// of a matched phrase are never re-matched individually later.
	for _, p := range certPhrases {
		if strings.Contains(working, p.phrase) {
			filters.AddCertification(p.grade)
			working = strings.ReplaceAll(working, p.phrase, " ")
		}
	}
	for _, p := range categoryPhrases {
		if strings.Contains(working, p.phrase) {
			for _, t := range categoryExpansions[p.category] {
				filters.AddItemType(t)
			}
			working = strings.ReplaceAll(working, p.phrase, " ")
		}
	}
	for _, p := range itemTypePhrases {
		if strings.Contains(working, p.phrase) {
			filters.AddItemType(p.itemType)
			working = strings.ReplaceAll(working, p.phrase, " ")
		}
	}
	for _, p := range provincePhrases {
		if strings.Contains(working, p.phrase) {
			filters.AddProvince(p.province)
			working = strings.ReplaceAll(working, p.phrase, " ")
		}
	}

	var remaining []string
	for _, word := range strings.Fields(working) {
		if !searchable(word, MinTermLength) {
			continue
		}
		if !classifyWord(word, &filters) {
			remaining = append(remaining, word)
		}
	}
	return filters, remaining
}

// classifyWord dispatches one word through the ordered classifier list.
// The first class that recognizes the word consumes it.
func classifyWord(word string, filters *models.SemanticFilters) bool {
	if grade, ok := certWords[word]; ok {
		filters.AddCertification(grade)
		return true
	}
	if types, ok := categoryExpansions[word]; ok {
		for _, t := range types {
			filters.AddItemType(t)
		}
		return true
	}
	if t, ok := itemTypeWords[word]; ok {
		filters.AddItemType(t)
		return true
	}
	if status, ok := signatureWords[word]; ok {
		filters.AddSignatureStatus(status)
		return true
	}
	if province, ok := provinceWords[word]; ok {
		filters.AddProvince(province)
		return true
	}
	return false
}
