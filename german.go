package spellout

import "strings"

// germanSpeller spells numbers in German, fusing everything below one
// million into a single compound word, as in "einhundertdreiundzwanzig".
// A one is "ein" inside a compound, "eins" at the end of a number, and
// "eine" before the feminine scale nouns from "million" upwards.
type germanSpeller struct {
	l *lexicon
}

var germanLexicon = lexicon{
	units: [20]string{
		"", "ein", "zwei", "drei", "vier", "fünf", "sechs", "sieben",
		"acht", "neun", "zehn", "elf", "zwölf", "dreizehn", "vierzehn",
		"fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn",
	},
	tens: [10]string{
		"", "", "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig",
		"siebzig", "achtzig", "neunzig",
	},
	hundred: "hundert",
	scales: []scale{
		{1, "tausend"}, {2, "million"}, {3, "milliarde"}, {4, "billion"},
		{5, "billiarde"}, {6, "trillion"}, {7, "trilliarde"},
		{8, "quadrillion"}, {9, "quadrilliarde"}, {10, "quintillion"},
		{11, "quintilliarde"},
	},
	zero:         "null",
	negative:     "minus",
	point:        "komma",
	conj:         "und",
	tensSep:      "und",
	unitsFirst:   true,
	fuseBelowExp: 2,
	pluralZero:   true,
	pluralScale:  pluralGermanScale,
	countOf:      germanCountOf,
}

// germanCountOf turns a trailing "eins" into "ein" before a unit noun,
// as in "einhundertein euro".
func germanCountOf(s string) string {
	if strings.HasSuffix(s, "eins") {
		return s[:len(s)-1]
	}
	return s
}

// pluralGermanScale forms the plurals "millionen" and "milliarden";
// "tausend" is invariable.
func pluralGermanScale(word string, val, exp int) string {
	if exp < 2 || val <= 1 {
		return word
	}
	if strings.HasSuffix(word, "e") {
		return word + "n"
	}
	return word + "en"
}

func (s germanSpeller) lex() *lexicon {
	return s.l
}

func (s germanSpeller) spellGroup(b *strings.Builder, g group) {
	lex := s.l
	v := g.val
	if v == 1 && g.exp >= 2 {
		b.WriteString("eine")
		return
	}
	if h := v / 100; h > 0 {
		b.WriteString(lex.units[h])
		b.WriteString(lex.hundred)
		v %= 100
		if v == 0 {
			return
		}
	}
	switch {
	case v == 1 && g.exp == 0:
		b.WriteString("eins")
	case v < 20:
		b.WriteString(lex.units[v])
	case v%10 == 0:
		b.WriteString(lex.tens[v/10])
	default:
		first, second := lex.tens[v/10], lex.units[v%10]
		if lex.unitsFirst {
			first, second = second, first
		}
		b.WriteString(first)
		b.WriteString(lex.tensSep)
		b.WriteString(second)
	}
}
