package query

import "github.com/meito/kensaku/internal/models"

// MinTermLength is the default minimum searchable term length, in runes.
// Dense-script terms are exempt (see HasDenseScript).
const MinTermLength = 2

// BaseCurrency is the currency all price filters are normalized into.
const BaseCurrency = "JPY"

// currencyRates holds JPY per one unit of the foreign currency. The table
// is deliberately static: a rate change changes filter semantics, so
// updates ship with the code instead of being fetched at runtime.
//
// Rates as of 2026-07-01.
var currencyRates = map[string]float64{
	"usd":     148.0,
	"dollar":  148.0,
	"dollars": 148.0,
	"eur":     161.0,
	"euro":    161.0,
	"euros":   161.0,
	"gbp":     187.0,
	"pound":   187.0,
	"pounds":  187.0,
	"aud":     97.0,
	"cad":     108.0,
	"chf":     166.0,
}

// numericFieldAliases maps token aliases to the column they filter. JPY
// aliases resolve directly to the price field; no conversion applies.
var numericFieldAliases = map[string]models.NumericField{
	"nagasa": models.FieldLength,
	"length": models.FieldLength,
	"cm":     models.FieldLength,
	"price":  models.FieldPrice,
	"jpy":    models.FieldPrice,
	"yen":    models.FieldPrice,
}

var numericOperators = map[string]models.NumericOperator{
	">":  models.OpGT,
	">=": models.OpGTE,
	"<":  models.OpLT,
	"<=": models.OpLTE,
}

// certPhrases are multi-word certification spellings, longest first so
// "tokubetsu juyo token" wins before "juyo token" can match inside it.
var certPhrases = []struct {
	phrase string
	grade  models.CertGrade
}{
	{"tokubetsu juyo token", models.CertTokubetsuJuyo},
	{"tokubetsu hozon token", models.CertTokubetsuHozon},
	{"juyo bijutsuhin", models.CertJuyoBijutsuhin},
	{"tokubetsu juyo", models.CertTokubetsuJuyo},
	{"tokubetsu hozon", models.CertTokubetsuHozon},
	{"juyo token", models.CertJuyo},
	{"hozon token", models.CertHozon},
}

var certWords = map[string]models.CertGrade{
	"hozon":  models.CertHozon,
	"tokuho": models.CertTokubetsuHozon,
	"juyo":   models.CertJuyo,
	"tokuju": models.CertTokubetsuJuyo,
	"重要刀剣":   models.CertJuyo,
	"特別重要刀剣": models.CertTokubetsuJuyo,
	"保存刀剣":   models.CertHozon,
	"特別保存刀剣": models.CertTokubetsuHozon,
	"重要美術品":  models.CertJuyoBijutsuhin,
}

// bladeTypes and fittingTypes are the fixed, ordered category expansions.
// Order is part of the contract: expansion output must be deterministic.
var (
	bladeTypes = []models.ItemType{
		models.ItemKatana, models.ItemWakizashi, models.ItemTanto,
		models.ItemTachi, models.ItemNaginata, models.ItemYari,
	}
	fittingTypes = []models.ItemType{
		models.ItemTsuba, models.ItemFuchi, models.ItemKashira,
		models.ItemMenuki, models.ItemKozuka, models.ItemKogai,
	}
	polearmTypes = []models.ItemType{models.ItemYari, models.ItemNaginata}
)

// categoryExpansions maps an umbrella term to the concrete item types it
// covers.
var categoryExpansions = map[string][]models.ItemType{
	"nihonto":  bladeTypes,
	"token":    bladeTypes,
	"blades":   bladeTypes,
	"swords":   bladeTypes,
	"日本刀":      bladeTypes,
	"tosogu":   fittingTypes,
	"kodogu":   fittingTypes,
	"fittings": fittingTypes,
	"刀装具":      fittingTypes,
	"polearms": polearmTypes,
}

var categoryPhrases = []struct {
	phrase   string
	category string // key into categoryExpansions
}{
	{"sword fittings", "tosogu"},
	{"japanese swords", "nihonto"},
	{"pole arms", "polearms"},
}

var itemTypePhrases = []struct {
	phrase   string
	itemType models.ItemType
}{
	{"long sword", models.ItemKatana},
	{"short sword", models.ItemWakizashi},
	{"sword guard", models.ItemTsuba},
}

var itemTypeWords = map[string]models.ItemType{
	"katana":    models.ItemKatana,
	"wakizashi": models.ItemWakizashi,
	"tanto":     models.ItemTanto,
	"tachi":     models.ItemTachi,
	"naginata":  models.ItemNaginata,
	"yari":      models.ItemYari,
	"tsuba":     models.ItemTsuba,
	"fuchi":     models.ItemFuchi,
	"kashira":   models.ItemKashira,
	"menuki":    models.ItemMenuki,
	"kozuka":    models.ItemKozuka,
	"kogai":     models.ItemKogai,
	"刀":         models.ItemKatana,
	"脇差":        models.ItemWakizashi,
	"短刀":        models.ItemTanto,
	"太刀":        models.ItemTachi,
	"薙刀":        models.ItemNaginata,
	"槍":         models.ItemYari,
	"鍔":         models.ItemTsuba,
}

var signatureWords = map[string]models.SignatureStatus{
	"signed":   models.SignatureSigned,
	"zaimei":   models.SignatureSigned,
	"mei":      models.SignatureSigned,
	"在銘":       models.SignatureSigned,
	"unsigned": models.SignatureUnsigned,
	"mumei":    models.SignatureUnsigned,
	"無銘":       models.SignatureUnsigned,
}

// provincePhrases match traditions and provinces when named explicitly.
// Bare romaji province names ("bizen" alone) stay free text: the same word
// is also a school name and a smith lineage, so a single word is too
// ambiguous to turn into an exact-match filter.
var provincePhrases = []struct {
	phrase   string
	province models.Province
}{
	{"bizen den", models.ProvinceBizen},
	{"bizen province", models.ProvinceBizen},
	{"yamashiro den", models.ProvinceYamashiro},
	{"yamashiro province", models.ProvinceYamashiro},
	{"yamato den", models.ProvinceYamato},
	{"yamato province", models.ProvinceYamato},
	{"soshu den", models.ProvinceSoshu},
	{"sagami province", models.ProvinceSoshu},
	{"mino den", models.ProvinceMino},
	{"mino province", models.ProvinceMino},
	{"hizen province", models.ProvinceHizen},
	{"satsuma province", models.ProvinceSatsuma},
	{"echizen province", models.ProvinceEchizen},
}

var provinceWords = map[string]models.Province{
	"備前": models.ProvinceBizen,
	"山城": models.ProvinceYamashiro,
	"大和": models.ProvinceYamato,
	"相州": models.ProvinceSoshu,
	"美濃": models.ProvinceMino,
	"肥前": models.ProvinceHizen,
	"薩摩": models.ProvinceSatsuma,
	"越前": models.ProvinceEchizen,
}
