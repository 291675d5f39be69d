package spellout

import "strings"

// englishSpeller spells numbers in English, using the short scale and
// joining words with spaces, as in "One Hundred Twenty Three".
type englishSpeller struct {
	l *lexicon
}

var englishLexicon = lexicon{
	units: [20]string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
		"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen",
		"Nineteen",
	},
	tens: [10]string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
		"Seventy", "Eighty", "Ninety",
	},
	hundred: "Hundred",
	scales: []scale{
		{1, "Thousand"}, {2, "Million"}, {3, "Billion"}, {4, "Trillion"},
		{5, "Quadrillion"}, {6, "Quintillion"}, {7, "Sextillion"},
		{8, "Septillion"}, {9, "Octillion"}, {10, "Nonillion"},
		{11, "Decillion"},
	},
	zero:       "Zero",
	negative:   "Negative",
	point:      "point",
	conj:       "and",
	tensSep:    " ",
	hundredSep: " ",
	pluralZero: true,
}

func (s englishSpeller) lex() *lexicon {
	return s.l
}

func (s englishSpeller) spellGroup(b *strings.Builder, g group) {
	lex := s.l
	v := g.val
	if h := v / 100; h > 0 {
		b.WriteString(lex.units[h])
		b.WriteString(lex.hundredSep)
		b.WriteString(lex.hundred)
		v %= 100
		if v == 0 {
			return
		}
		b.WriteString(lex.hundredSep)
		if lex.hundredConj != "" {
			b.WriteString(lex.hundredConj)
			b.WriteString(lex.hundredSep)
		}
	}
	switch {
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
