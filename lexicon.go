package spellout

// scale associates a power of one thousand with its name in a particular
// language.
// For example, in English the exponent 2 is named "Million", since
// 1,000,000 is 1000².
type scale struct {
	exp  int
	word string
}

// lexicon holds the vocabulary and grammar of a single language.
// The zero value is not a valid lexicon; each supported language defines
// its own package-level instance.
//
// The vocabulary covers the numbers 0 through 19, the multiples of ten up
// to 90, the word for one hundred, and the named powers of one thousand.
// The grammar fields describe how these words are joined into a phrase,
// which is where the supported languages differ the most.
type lexicon struct {
	units   [20]string // "one" through "nineteen", index 0 unused
	tens    [10]string // "twenty" through "ninety", indexes 0 and 1 unused
	hundred string
	scales  []scale // ascending by exponent

	zero     string
	negative string
	point    string // separator spoken between integer and fractional parts
	conj     string // conjunction between main unit and subunit clauses

	tensSep     string // between a multiple of ten and a trailing unit
	unitsFirst  bool   // units are spoken before tens, as in German
	hundredSep  string // between the hundreds part and the group remainder
	hundredConj string // conjunction spoken after the hundreds part, if any

	// fuseBelowExp is the exponent below which groups and their scale
	// words are written without separators, forming a single compound
	// word as in German "eintausendzweihundert".
	fuseBelowExp int

	// omitOneThousand drops the unit before a bare thousand, so that
	// French 1000 is "mille" rather than "un mille".
	omitOneThousand bool

	// pluralZero pairs a zero count with the plural unit name, as in
	// "Zero dollars"; French pairs it with the singular instead.
	pluralZero bool

	// pluralScale inflects a scale word for the group value preceding it,
	// as in French "deux millions".
	// A nil hook leaves all scale words uninflected.
	pluralScale func(word string, val, exp int) string

	// countOf adapts a spelled cardinal for use before a unit noun, as
	// in German "ein euro" rather than the bare "eins".
	// A nil hook leaves the phrase unchanged.
	countOf func(s string) string
}

// maxExp returns the largest named power of one thousand.
func (lex *lexicon) maxExp() int {
	return lex.scales[len(lex.scales)-1].exp
}

// scaleWord returns the name of the e-th power of one thousand.
// It panics if the power is not named, as decomposition rejects such
// values beforehand.
func (lex *lexicon) scaleWord(e int) string {
	for _, s := range lex.scales {
		if s.exp == e {
			return s.word
		}
	}
	panic("unnamed power of one thousand") // unreachable
}
