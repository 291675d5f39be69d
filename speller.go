package spellout

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// speller renders three-digit groups in one language.
// The shared composition in [spellGroups] handles everything above the
// group level, so a speller only needs to know its lexicon and the
// grammar of numbers below one thousand.
type speller interface {
	lex() *lexicon
	// spellGroup writes the words for a single group, whose value is
	// between 1 and 999.
	spellGroup(b *strings.Builder, g group)
}

// spellGroups joins the spelled groups with the language's scale words,
// most significant group first.
func spellGroups(sp speller, groups []group) string {
	lex := sp.lex()
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			prev := groups[i-1]
			if prev.exp >= lex.fuseBelowExp || g.exp >= lex.fuseBelowExp {
				b.WriteByte(' ')
			}
		}
		bare := g.val == 1 && g.exp == 1 && lex.omitOneThousand
		if !bare {
			sp.spellGroup(&b, g)
		}
		if g.exp > 0 {
			word := lex.scaleWord(g.exp)
			if lex.pluralScale != nil {
				word = lex.pluralScale(word, g.val, g.exp)
			}
			if !bare && g.exp >= lex.fuseBelowExp {
				b.WriteByte(' ')
			}
			b.WriteString(word)
		}
	}
	return b.String()
}

// spellCardinal spells a non-negative integer.
func spellCardinal(sp speller, z *big.Int) (string, error) {
	lex := sp.lex()
	if z.Sign() == 0 {
		return lex.zero, nil
	}
	groups, err := decompose(z, lex.maxExp())
	if err != nil {
		return "", err
	}
	return spellGroups(sp, groups), nil
}

// spellFraction spells frac as a cardinal number padded with a zero word
// for each leading fractional zero, so 0.05 at precision 2 reads
// "Zero Five" after the point word.
// frac must be positive and have at most prec digits.
func spellFraction(sp speller, frac int64, prec int) (string, error) {
	lex := sp.lex()
	s, err := spellCardinal(sp, big.NewInt(frac))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for n := len(strconv.FormatInt(frac, 10)); n < prec; n++ {
		b.WriteString(lex.zero)
		b.WriteByte(' ')
	}
	b.WriteString(s)
	return b.String(), nil
}

// capitalize upper-cases the first letter of the phrase.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
