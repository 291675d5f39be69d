package spellout

import "strings"

// spanishSpeller spells numbers in Spanish, with the conjunction "y"
// between tens and units and the irregular hundreds "quinientos",
// "setecientos", and "novecientos".
type spanishSpeller struct {
	l *lexicon
}

var spanishLexicon = lexicon{
	units: [20]string{
		"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete",
		"ocho", "nueve", "diez", "once", "doce", "trece", "catorce",
		"quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
	},
	tens: [10]string{
		"", "", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta",
		"setenta", "ochenta", "noventa",
	},
	hundred: "ciento",
	scales: []scale{
		{1, "mil"}, {2, "millón"}, {3, "millardo"}, {4, "billón"},
	},
	zero:            "cero",
	negative:        "menos",
	point:           "coma",
	conj:            "con",
	tensSep:         " y ",
	hundredSep:      " ",
	omitOneThousand: true,
	pluralZero:      true,
	pluralScale:     pluralSpanishScale,
	countOf:         spanishCountOf,
}

// spanishCountOf apocopates a trailing "uno" before a unit noun, as in
// "veinte y un centavos".
func spanishCountOf(s string) string {
	if s == "uno" {
		return "un"
	}
	if base, ok := strings.CutSuffix(s, " uno"); ok {
		return base + " un"
	}
	return s
}

// spanishHundreds holds the multiples of one hundred, several of which
// are irregular.
var spanishHundreds = [10]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos",
	"quinientos", "seiscientos", "setecientos", "ochocientos",
	"novecientos",
}

// pluralSpanishScale forms the plurals "millones" and "billones";
// "mil" is invariable.
func pluralSpanishScale(word string, val, exp int) string {
	if exp < 2 || val <= 1 {
		return word
	}
	if base, ok := strings.CutSuffix(word, "ón"); ok {
		return base + "ones"
	}
	return word + "s"
}

func (s spanishSpeller) lex() *lexicon {
	return s.l
}

func (s spanishSpeller) spellGroup(b *strings.Builder, g group) {
	lex := s.l
	v := g.val
	if v == 100 {
		b.WriteString("cien")
		return
	}
	if h := v / 100; h > 0 {
		b.WriteString(spanishHundreds[h])
		v %= 100
		if v == 0 {
			return
		}
		b.WriteString(lex.hundredSep)
	}
	final := g.exp == 0
	switch {
	case v < 20:
		b.WriteString(s.unit(v, final))
	case v%10 == 0:
		b.WriteString(lex.tens[v/10])
	default:
		b.WriteString(lex.tens[v/10])
		b.WriteString(lex.tensSep)
		b.WriteString(s.unit(v%10, final))
	}
}

// unit applies the apocope "un" to a one that precedes a scale word, as
// in "veinte y un millones".
func (s spanishSpeller) unit(v int, final bool) string {
	if v == 1 && !final {
		return "un"
	}
	return s.l.units[v]
}
