package models

import (
	"strings"
	"testing"
)

func TestCompileRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "empty is legal", query: "", wantErr: false},
		{name: "normal query", query: "bizen katana", wantErr: false},
		{name: "at the limit", query: strings.Repeat("a", MaxQueryRunes), wantErr: false},
		{name: "over the limit", query: strings.Repeat("a", MaxQueryRunes+1), wantErr: true},
		{name: "multibyte counted in runes", query: strings.Repeat("刀", MaxQueryRunes), wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CompileRequest{Query: tt.query}
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSemanticFilters_AddDeduplicates(t *testing.T) {
	var f SemanticFilters
	f.AddItemType(ItemKatana)
	f.AddItemType(ItemTanto)
	f.AddItemType(ItemKatana)
	if len(f.ItemTypes) != 2 {
		t.Fatalf("item types: got %v, want 2 entries", f.ItemTypes)
	}
	if f.ItemTypes[0] != ItemKatana || f.ItemTypes[1] != ItemTanto {
		t.Errorf("insertion order not preserved: %v", f.ItemTypes)
	}

	f.AddCertification(CertJuyo)
	f.AddCertification(CertJuyo)
	if len(f.Certifications) != 1 {
		t.Errorf("certifications: got %v, want 1 entry", f.Certifications)
	}
}

func TestSemanticFilters_IsZero(t *testing.T) {
	var f SemanticFilters
	if !f.IsZero() {
		t.Error("fresh filters should be zero")
	}
	f.AddSignatureStatus(SignatureUnsigned)
	if f.IsZero() {
		t.Error("filters with a signature status should not be zero")
	}
}

func TestEmptyCompiledQuery(t *testing.T) {
	q := EmptyCompiledQuery()
	if !q.IsEmpty || q.QueryString != "" {
		t.Errorf("empty query: got %+v", q)
	}
	if q.Terms == nil || len(q.Terms) != 0 {
		t.Errorf("terms should be an empty slice, got %v", q.Terms)
	}
}
