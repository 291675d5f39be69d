package spellout

import "strings"

// frenchSpeller spells numbers in French, with hyphenated tens compounds,
// the conjunction "et" before a trailing "un" or "onze", and the vigesimal
// decades "soixante-dix", "quatre-vingts", and "quatre-vingt-dix".
type frenchSpeller struct {
	l *lexicon
}

var frenchLexicon = lexicon{
	units: [20]string{
		"", "un", "deux", "trois", "quatre", "cinq", "six", "sept",
		"huit", "neuf", "dix", "onze", "douze", "treize", "quatorze",
		"quinze", "seize", "dix-sept", "dix-huit", "dix-neuf",
	},
	tens: [10]string{
		"", "", "vingt", "trente", "quarante", "cinquante", "soixante",
		"soixante-dix", "quatre-vingt", "quatre-vingt-dix",
	},
	hundred: "cent",
	scales: []scale{
		{1, "mille"}, {2, "million"}, {3, "milliard"}, {4, "billion"},
		{5, "billiard"}, {6, "trillion"}, {7, "trilliard"},
		{8, "quatrillion"}, {9, "quatrilliard"}, {10, "quintillion"},
		{11, "quintilliard"},
	},
	zero:            "zéro",
	negative:        "moins",
	point:           "virgule",
	conj:            "et",
	tensSep:         "-",
	hundredSep:      " ",
	omitOneThousand: true,
	pluralScale:     pluralFrenchScale,
}

// pluralFrenchScale appends the plural "s" to the scale nouns from
// "million" upwards, as in "deux millions".
// "mille" is invariable.
func pluralFrenchScale(word string, val, exp int) string {
	if exp >= 2 && val > 1 {
		return word + "s"
	}
	return word
}

func (s frenchSpeller) lex() *lexicon {
	return s.l
}

func (s frenchSpeller) spellGroup(b *strings.Builder, g group) {
	lex := s.l
	v := g.val
	if h := v / 100; h > 0 {
		if h > 1 {
			b.WriteString(lex.units[h])
			b.WriteString(lex.hundredSep)
		}
		b.WriteString(lex.hundred)
		v %= 100
		if v == 0 {
			// "deux cents" keeps its plural only at the end of the number
			if h > 1 && g.exp == 0 {
				b.WriteByte('s')
			}
			return
		}
		b.WriteString(lex.hundredSep)
	}
	s.spellTens(b, v, g.exp == 0)
}

// spellTens writes the words for 1 through 99.
func (s frenchSpeller) spellTens(b *strings.Builder, v int, final bool) {
	lex := s.l
	switch {
	case v < 20:
		b.WriteString(lex.units[v])
	case v < 70:
		t, u := v/10, v%10
		switch u {
		case 0:
			b.WriteString(lex.tens[t])
		case 1:
			b.WriteString(lex.tens[t])
			b.WriteString(" et ")
			b.WriteString(lex.units[1])
		default:
			b.WriteString(lex.tens[t])
			b.WriteString(lex.tensSep)
			b.WriteString(lex.units[u])
		}
	case v < 80:
		// 70 through 79 ride on the teens, "soixante-douze"
		switch v {
		case 70:
			b.WriteString(lex.tens[7])
		case 71:
			b.WriteString(lex.tens[6])
			b.WriteString(" et ")
			b.WriteString(lex.units[11])
		default:
			b.WriteString(lex.tens[6])
			b.WriteString(lex.tensSep)
			b.WriteString(lex.units[v-60])
		}
	default:
		// the vigesimal eighties and nineties take no "et"
		switch v {
		case 80:
			b.WriteString(lex.tens[8])
			if final {
				b.WriteByte('s')
			}
		case 90:
			b.WriteString(lex.tens[9])
		default:
			b.WriteString(lex.tens[8])
			b.WriteString(lex.tensSep)
			b.WriteString(lex.units[v-80])
		}
	}
}
