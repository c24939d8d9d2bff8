package query

import (
	"reflect"
	"testing"

	"github.com/meito/kensaku/internal/models"
)

func TestExtractSemantic(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantFilters   models.SemanticFilters
		wantRemaining []string
	}{
		{
			name:  "item type consumed, rest stays free",
			input: "bizen katana",
			wantFilters: models.SemanticFilters{
				ItemTypes: []models.ItemType{models.ItemKatana},
			},
			wantRemaining: []string{"bizen"},
		},
		{
			name:  "certification and item type together",
			input: "tanto juyo goto",
			wantFilters: models.SemanticFilters{
				Certifications: []models.CertGrade{models.CertJuyo},
				ItemTypes:      []models.ItemType{models.ItemTanto},
			},
			wantRemaining: []string{"goto"},
		},
		{
			name:  "multi-word certification phrase wins over its words",
			input: "tokubetsu juyo katana",
			wantFilters: models.SemanticFilters{
				Certifications: []models.CertGrade{models.CertTokubetsuJuyo},
				ItemTypes:      []models.ItemType{models.ItemKatana},
			},
		},
		{
			name:  "juyo token phrase does not leak category word",
			input: "juyo token tsuba",
			wantFilters: models.SemanticFilters{
				Certifications: []models.CertGrade{models.CertJuyo},
				ItemTypes:      []models.ItemType{models.ItemTsuba},
			},
		},
		{
			name:  "category expands in fixed order",
			input: "tosogu",
			wantFilters: models.SemanticFilters{
				ItemTypes: []models.ItemType{
					models.ItemTsuba, models.ItemFuchi, models.ItemKashira,
					models.ItemMenuki, models.ItemKozuka, models.ItemKogai,
				},
			},
		},
		{
			name:  "category phrase expands",
			input: "antique sword fittings",
			wantFilters: models.SemanticFilters{
				ItemTypes: []models.ItemType{
					models.ItemTsuba, models.ItemFuchi, models.ItemKashira,
					models.ItemMenuki, models.ItemKozuka, models.ItemKogai,
				},
			},
			wantRemaining: []string{"antique"},
		},
		{
			name:  "item type phrase",
			input: "signed long sword",
			wantFilters: models.SemanticFilters{
				ItemTypes:         []models.ItemType{models.ItemKatana},
				SignatureStatuses: []models.SignatureStatus{models.SignatureSigned},
			},
		},
		{
			name:  "province needs an explicit phrase",
			input: "bizen den katana",
			wantFilters: models.SemanticFilters{
				ItemTypes: []models.ItemType{models.ItemKatana},
				Provinces: []models.Province{models.ProvinceBizen},
			},
		},
		{
			name:  "signature status",
			input: "mumei wakizashi",
			wantFilters: models.SemanticFilters{
				ItemTypes:         []models.ItemType{models.ItemWakizashi},
				SignatureStatuses: []models.SignatureStatus{models.SignatureUnsigned},
			},
		},
		{
			name:  "native script single characters",
			input: "鍔 無銘",
			wantFilters: models.SemanticFilters{
				ItemTypes:         []models.ItemType{models.ItemTsuba},
				SignatureStatuses: []models.SignatureStatus{models.SignatureUnsigned},
			},
		},
		{
			name:  "duplicates collapse",
			input: "katana katana juyo juyo",
			wantFilters: models.SemanticFilters{
				Certifications: []models.CertGrade{models.CertJuyo},
				ItemTypes:      []models.ItemType{models.ItemKatana},
			},
		},
		{
			name:  "category and member overlap collapses",
			input: "polearms yari",
			wantFilters: models.SemanticFilters{
				ItemTypes: []models.ItemType{models.ItemYari, models.ItemNaginata},
			},
		},
		{
			name:          "unrecognized words pass through in order",
			input:         "masamune school utsuri",
			wantRemaining: []string{"masamune", "school", "utsuri"},
		},
		{
			name:  "normalization applies before lookup",
			input: "KATANA Jūyō",
			wantFilters: models.SemanticFilters{
				Certifications: []models.CertGrade{models.CertJuyo},
				ItemTypes:      []models.ItemType{models.ItemKatana},
			},
		},
		{
			name:  "empty input",
			input: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, remaining := ExtractSemantic(tt.input)
			if !reflect.DeepEqual(filters, tt.wantFilters) {
				t.Errorf("filters = %+v, want %+v", filters, tt.wantFilters)
			}
			if !reflect.DeepEqual(remaining, tt.wantRemaining) {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
		})
	}
}

func TestExtractSemantic_deterministic(t *testing.T) {
	input := "tokubetsu hozon katana tosogu mumei bizen den masamune"
	firstFilters, firstRemaining := ExtractSemantic(input)
	for i := 0; i < 50; i++ {
		filters, remaining := ExtractSemantic(input)
		if !reflect.DeepEqual(filters, firstFilters) || !reflect.DeepEqual(remaining, firstRemaining) {
			t.Fatalf("run %d differed: %+v / %v", i, filters, remaining)
		}
	}
}
