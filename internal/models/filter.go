// Package models defines the value types exchanged between the query
// compiler stages and their callers.
package models

// NumericField identifies a filterable numeric column in the catalog.
type NumericField string

const (
	// FieldLength is the blade length (nagasa) column, in centimeters.
	FieldLength NumericField = "length"
	// FieldPrice is the price column, in JPY.
	FieldPrice NumericField = "price"
)

// NumericOperator is a comparison operator on a numeric field.
type NumericOperator string

const (
	OpGT  NumericOperator = "gt"
	OpGTE NumericOperator = "gte"
	OpLT  NumericOperator = "lt"
	OpLTE NumericOperator = "lte"
)

// NumericFilter is one range predicate extracted from the search text.
// Price values are always in JPY. Filters on the same field are not
// merged; the caller applies them as an AND of ranges and is responsible
// for detecting contradictory bounds.
type NumericFilter struct {
	Field    NumericField    `json:"field"`
	Operator NumericOperator `json:"operator"`
	Value    float64         `json:"value"`
}

// CertGrade is an NBTHK certification grade.
type CertGrade string

const (
	CertHozon          CertGrade = "hozon"
	CertTokubetsuHozon CertGrade = "tokubetsu_hozon"
	CertJuyo           CertGrade = "juyo"
	CertTokubetsuJuyo  CertGrade = "tokubetsu_juyo"
	CertJuyoBijutsuhin CertGrade = "juyo_bijutsuhin"
)

// ItemType is a concrete catalog category: a blade shape, a polearm, or a
// fitting.
type ItemType string

const (
	ItemKatana    ItemType = "katana"
	ItemWakizashi ItemType = "wakizashi"
	ItemTanto     ItemType = "tanto"
	ItemTachi     ItemType = "tachi"
	ItemNaginata  ItemType = "naginata"
	ItemYari      ItemType = "yari"
	ItemTsuba     ItemType = "tsuba"
	ItemFuchi     ItemType = "fuchi"
	ItemKashira   ItemType = "kashira"
	ItemMenuki    ItemType = "menuki"
	ItemKozuka    ItemType = "kozuka"
	ItemKogai     ItemType = "kogai"
)

// SignatureStatus says whether a blade carries its maker's signature.
type SignatureStatus string

const (
	SignatureSigned   SignatureStatus = "signed"
	SignatureUnsigned SignatureStatus = "unsigned"
)

// Province is an old province or one of the five sword-making traditions.
type Province string

const (
	ProvinceBizen     Province = "bizen"
	ProvinceYamashiro Province = "yamashiro"
	ProvinceYamato    Province = "yamato"
	ProvinceSoshu     Province = "soshu"
	ProvinceMino      Province = "mino"
	ProvinceHizen     Province = "hizen"
	ProvinceSatsuma   Province = "satsuma"
	ProvinceEchizen   Province = "echizen"
)

// SemanticFilters groups the exact-match filters recognized in the search
// text. Each set preserves first-mention order and holds no duplicates.
type SemanticFilters struct {
	Certifications    []CertGrade       `json:"certifications,omitempty"`
	ItemTypes         []ItemType        `json:"item_types,omitempty"`
	SignatureStatuses []SignatureStatus `json:"signature_statuses,omitempty"`
	Provinces         []Province        `json:"provinces,omitempty"`
}

// AddCertification records a certification grade, ignoring repeats.
func (f *SemanticFilters) AddCertification(c CertGrade) {
	f.Certifications = appendUnique(f.Certifications, c)
}

// AddItemType records an item type, ignoring repeats.
func (f *SemanticFilters) AddItemType(t ItemType) {
	f.ItemTypes = appendUnique(f.ItemTypes, t)
}

// AddSignatureStatus records a signature status, ignoring repeats.
func (f *SemanticFilters) AddSignatureStatus(s SignatureStatus) {
	f.SignatureStatuses = appendUnique(f.SignatureStatuses, s)
}

// AddProvince records a province, ignoring repeats.
func (f *SemanticFilters) AddProvince(p Province) {
	f.Provinces = appendUnique(f.Provinces, p)
}

// IsZero reports whether no semantic filter was recognized.
func (f *SemanticFilters) IsZero() bool {
	return len(f.Certifications) == 0 && len(f.ItemTypes) == 0 &&
		len(f.SignatureStatuses) == 0 && len(f.Provinces) == 0
}

func appendUnique[T comparable](set []T, v T) []T {
	for _, existing := range set {
		if existing == v {
			return set
		}
	}
	return append(set, v)
}
