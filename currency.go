package spellout

import (
	"math/big"

	"github.com/govalues/money"
)

// unitNames holds the written names of a currency's main unit and subunit
// in one language.
// Subunit names are left empty for currencies without minor units, such
// as the Japanese yen.
type unitNames struct {
	one  string // main unit, singular
	many string // main unit, plural
	sub  string // subunit, singular
	subs string // subunit, plural
}

// currencyNames lists the unit names of commonly spelled currencies,
// indexed by currency and language.
// The names follow everyday usage rather than the official ISO wording,
// so GBP subunits are "pence" and CHF subunits in German are "rappen".
var currencyNames = map[money.Currency][len(codeLookup)]unitNames{
	money.USD: {
		English: {"dollar", "dollars", "cent", "cents"},
		French:  {"dollar", "dollars", "cent", "cents"},
		Spanish: {"dólar", "dólares", "centavo", "centavos"},
		German:  {"dollar", "dollar", "cent", "cent"},
	},
	money.EUR: {
		English: {"euro", "euros", "cent", "cents"},
		French:  {"euro", "euros", "centime", "centimes"},
		Spanish: {"euro", "euros", "céntimo", "céntimos"},
		German:  {"euro", "euro", "cent", "cent"},
	},
	money.JPY: {
		English: {"yen", "yen", "", ""},
		French:  {"yen", "yens", "", ""},
		Spanish: {"yen", "yenes", "", ""},
		German:  {"yen", "yen", "", ""},
	},
	money.GBP: {
		English: {"pound", "pounds", "penny", "pence"},
		French:  {"livre", "livres", "penny", "pence"},
		Spanish: {"libra", "libras", "penique", "peniques"},
		German:  {"pfund", "pfund", "penny", "pence"},
	},
	money.CHF: {
		English: {"franc", "francs", "centime", "centimes"},
		French:  {"franc", "francs", "centime", "centimes"},
		Spanish: {"franco", "francos", "céntimo", "céntimos"},
		German:  {"franken", "franken", "rappen", "rappen"},
	},
	money.CAD: {
		English: {"dollar", "dollars", "cent", "cents"},
		French:  {"dollar", "dollars", "cent", "cents"},
		Spanish: {"dólar", "dólares", "centavo", "centavos"},
		German:  {"dollar", "dollar", "cent", "cent"},
	},
	money.AUD: {
		English: {"dollar", "dollars", "cent", "cents"},
		French:  {"dollar", "dollars", "cent", "cents"},
		Spanish: {"dólar", "dólares", "centavo", "centavos"},
		German:  {"dollar", "dollar", "cent", "cent"},
	},
	money.CNY: {
		English: {"yuan", "yuan", "fen", "fen"},
		French:  {"yuan", "yuans", "fen", "fen"},
		Spanish: {"yuan", "yuanes", "fen", "fen"},
		German:  {"yuan", "yuan", "fen", "fen"},
	},
	money.INR: {
		English: {"rupee", "rupees", "paisa", "paise"},
		French:  {"roupie", "roupies", "paisa", "paise"},
		Spanish: {"rupia", "rupias", "paisa", "paise"},
		German:  {"rupie", "rupien", "paisa", "paise"},
	},
	money.BRL: {
		English: {"real", "reais", "centavo", "centavos"},
		French:  {"réal", "réals", "centavo", "centavos"},
		Spanish: {"real", "reales", "centavo", "centavos"},
		German:  {"real", "real", "centavo", "centavos"},
	},
	money.MXN: {
		English: {"peso", "pesos", "centavo", "centavos"},
		French:  {"peso", "pesos", "centavo", "centavos"},
		Spanish: {"peso", "pesos", "centavo", "centavos"},
		German:  {"peso", "pesos", "centavo", "centavos"},
	},
	money.RUB: {
		English: {"ruble", "rubles", "kopeck", "kopecks"},
		French:  {"rouble", "roubles", "kopeck", "kopecks"},
		Spanish: {"rublo", "rublos", "kopek", "kopeks"},
		German:  {"rubel", "rubel", "kopeke", "kopeken"},
	},
	money.OMR: {
		English: {"rial", "rials", "baisa", "baisa"},
		French:  {"rial", "rials", "baisa", "baisa"},
		Spanish: {"rial", "riales", "baisa", "baisa"},
		German:  {"rial", "rial", "baisa", "baisa"},
	},
	money.KWD: {
		English: {"dinar", "dinars", "fils", "fils"},
		French:  {"dinar", "dinars", "fils", "fils"},
		Spanish: {"dinar", "dinares", "fils", "fils"},
		German:  {"dinar", "dinar", "fils", "fils"},
	},
	money.SEK: {
		English: {"krona", "kronor", "öre", "öre"},
		French:  {"couronne", "couronnes", "öre", "öre"},
		Spanish: {"corona", "coronas", "öre", "öre"},
		German:  {"krone", "kronen", "öre", "öre"},
	},
	money.PLN: {
		English: {"zloty", "zlotys", "grosz", "groszy"},
		French:  {"zloty", "zlotys", "grosz", "groszy"},
		Spanish: {"zloty", "zlotys", "grosz", "groszy"},
		German:  {"zloty", "zloty", "grosz", "groszy"},
	},
	money.KRW: {
		English: {"won", "won", "", ""},
		French:  {"won", "wons", "", ""},
		Spanish: {"won", "wones", "", ""},
		German:  {"won", "won", "", ""},
	},
}

// fallbackNames names the units of currencies absent from currencyNames,
// using the language's everyday word for a small subunit.
// The main unit falls back to the ISO code, which is invariable.
var fallbackNames = [len(codeLookup)]unitNames{
	English: {"", "", "cent", "cents"},
	French:  {"", "", "centime", "centimes"},
	Spanish: {"", "", "centavo", "centavos"},
	German:  {"", "", "cent", "cent"},
}

// unitNamesFor resolves the unit names of a currency in a language.
// It never fails: unlisted currencies keep their ISO code as the main
// unit name.
func unitNamesFor(c money.Currency, l Language) unitNames {
	if names, ok := currencyNames[c]; ok {
		return names[l]
	}
	n := fallbackNames[l]
	n.one = c.Code()
	n.many = c.Code()
	return n
}

// pick chooses between the singular and plural main unit name for a
// count of v.
// French pairs the singular with zero, whereas the other languages
// pluralize it, hence the pluralZero knob.
func (n unitNames) pick(v *big.Int, pluralZero bool) string {
	if v.IsInt64() {
		switch v.Int64() {
		case 1:
			return n.one
		case 0:
			if !pluralZero {
				return n.one
			}
		}
	}
	return n.many
}

// pickSub chooses between the singular and plural subunit name for a
// count of v.
func (n unitNames) pickSub(v int64, pluralZero bool) string {
	if v == 1 || (v == 0 && !pluralZero) {
		return n.sub
	}
	return n.subs
}
