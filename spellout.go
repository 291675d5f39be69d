package spellout

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

var (
	// ErrOverflow is returned when the integer part of a number reaches
	// a power of one thousand that the target language has no name for.
	ErrOverflow = errors.New("number overflow")

	// ErrInvalidInput is returned when a numeric string cannot be parsed
	// or a precision is out of range.
	ErrInvalidInput = errors.New("invalid number")
)

// maxFracDigits bounds the spelled fractional digits such that any
// fraction fits into an int64.
const maxFracDigits = 18

// Casing determines the letter case of a spelled phrase.
type Casing uint8

const (
	// Capitalized upper-cases the first letter of the phrase,
	// as in "Quarante-deux".
	Capitalized Casing = iota

	// Uncapitalized lower-cases the whole phrase,
	// as in "forty two".
	Uncapitalized
)

// apply adjusts the letter case of the phrase.
func (c Casing) apply(s string) string {
	if c == Uncapitalized {
		return strings.ToLower(s)
	}
	return capitalize(s)
}

// SpellInt64 spells an integer as cardinal words.
//
//	English.SpellInt64(42, Capitalized)   // Forty Two
//	German.SpellInt64(42, Uncapitalized)  // zweiundvierzig
//
// SpellInt64 returns an error if the number exceeds the named range of
// the language.
// See also method [Language.SpellBigInt].
func (l Language) SpellInt64(n int64, c Casing) (string, error) {
	z := big.NewInt(n)
	return l.spellInteger(z.Abs(z), n < 0, c)
}

// SpellBigInt spells an arbitrary-precision integer as cardinal words.
// The value is not modified.
//
// SpellBigInt returns an error if:
//   - the value is nil;
//   - the number exceeds the named range of the language.
//     For example, English names powers of one thousand up to 10³³,
//     so numbers of 10³⁶ and above cannot be spelled.
func (l Language) SpellBigInt(z *big.Int, c Casing) (string, error) {
	if z == nil {
		return "", fmt.Errorf("spelling number: %w", ErrInvalidInput)
	}
	return l.spellInteger(new(big.Int).Abs(z), z.Sign() < 0, c)
}

// spellInteger spells the non-negative integer z, prefixing the negative
// word when neg is true.
func (l Language) spellInteger(z *big.Int, neg bool, c Casing) (string, error) {
	sp := l.speller()
	s, err := spellCardinal(sp, z)
	if err != nil {
		return "", fmt.Errorf("spelling number: %w", err)
	}
	if neg && z.Sign() != 0 {
		s = sp.lex().negative + " " + s
	}
	return c.apply(s), nil
}

// Spell spells a decimal number as cardinal words, with the integer and
// fractional parts separated by the language's word for the decimal
// point:
//
//	English.Spell(decimal.MustParse("42.75"), Capitalized)    // Forty Two point Seventy Five
//	French.Spell(decimal.MustParse("42.75"), Uncapitalized)   // quarante-deux virgule soixante-quinze
//
// The fraction is spelled with as many digits as the value carries, up to
// 18; an excess digit is rounded using banker's rounding.
// Leading fractional zeros are spelled out, so 0.05 is "Zero point Zero
// Five".
//
// Spell returns an error if the integer part or the fraction exceeds the
// named range of the language.
// See also method [Language.SpellExact].
func (l Language) Spell(d decimal.Decimal, c Casing) (string, error) {
	return l.SpellExact(d, min(d.Scale(), maxFracDigits), c)
}

// SpellExact is like [Language.Spell], but rounds the fraction to the
// given number of digits before spelling it.
// A zero precision spells only the integer part:
//
//	English.SpellExact(decimal.MustParse("42.75"), 0, Capitalized) // Forty Three
//	English.SpellExact(decimal.MustParse("42.75"), 1, Capitalized) // Forty Two point Eight
//
// SpellExact returns an error if:
//   - the precision is negative or greater than 18;
//   - the integer part or the fraction exceeds the named range of the
//     language.
func (l Language) SpellExact(d decimal.Decimal, prec int, c Casing) (string, error) {
	if prec < 0 || prec > maxFracDigits {
		return "", fmt.Errorf("spelling number: %w", ErrInvalidInput)
	}
	sp := l.speller()
	lex := sp.lex()
	// Splitting
	whole, frac, err := splitDecimal(d, prec)
	if err != nil {
		return "", fmt.Errorf("spelling number: %w", err)
	}
	// Integer part
	s, err := spellCardinal(sp, whole)
	if err != nil {
		return "", fmt.Errorf("spelling number: %w", err)
	}
	// Fraction
	fracPhrase := ""
	if frac != 0 {
		fracPhrase, err = spellFraction(sp, frac, prec)
		if err != nil {
			return "", fmt.Errorf("spelling number: %w", err)
		}
	}
	// Phrase
	var b strings.Builder
	if d.IsNeg() && (whole.Sign() != 0 || frac != 0) {
		b.WriteString(lex.negative)
		b.WriteByte(' ')
	}
	b.WriteString(s)
	if fracPhrase != "" {
		b.WriteByte(' ')
		b.WriteString(lex.point)
		b.WriteByte(' ')
		b.WriteString(fracPhrase)
	}
	return c.apply(b.String()), nil
}

// SpellFloat64 converts a float to a (possibly rounded) decimal and
// spells it.
// See also method [Language.Spell].
//
// SpellFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float cannot be represented as a decimal;
//   - the number exceeds the named range of the language.
func (l Language) SpellFloat64(f float64, c Casing) (string, error) {
	// Float
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("converting float: special value %v", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	// Decimal
	d, err := decimal.Parse(s)
	if err != nil {
		return "", fmt.Errorf("converting float: %w", err)
	}
	return l.Spell(d, c)
}

// SpellString parses a numeric string and spells it.
// The input string must be in one of the following formats:
//
//	42
//	-42
//	42.75
//	42,75
//	1234567890123456789012345678901234
//
// A comma is accepted as the decimal separator.
// Integers of any length up to the named range of the language are
// spelled exactly, whereas strings with a fractional part must fit into
// a [decimal.Decimal].
//
// SpellString returns an error if:
//   - the string is empty or not a number;
//   - the number exceeds the named range of the language.
func (l Language) SpellString(num string, c Casing) (string, error) {
	s := strings.TrimSpace(num)
	if s == "" {
		return "", fmt.Errorf("parsing number: %w", ErrInvalidInput)
	}
	s = strings.ReplaceAll(s, ",", ".")
	// Fractional numbers ride on decimal, integers on big.Int
	if strings.ContainsAny(s, ".eE") {
		d, err := decimal.Parse(s)
		if err != nil {
			return "", fmt.Errorf("parsing number %q: %w", num, ErrInvalidInput)
		}
		return l.Spell(d, c)
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", fmt.Errorf("parsing number %q: %w", num, ErrInvalidInput)
	}
	neg := z.Sign() < 0
	return l.spellInteger(z.Abs(z), neg, c)
}

// SpellAmount spells a monetary amount, naming the main unit after the
// integer part and the subunit after the fraction:
//
//	English.SpellAmount(money.MustParseAmount("USD", "42.75"), Capitalized)
//	// Forty Two dollars and Seventy Five cents
//
// The fraction is rounded to the scale of the amount's currency using
// banker's rounding, so yen are always spelled without a subunit clause.
// A zero fraction is omitted together with the conjunction.
// Currencies without a name in the target language keep their ISO code,
// as in "Forty Two XTS".
//
// SpellAmount returns an error if the amount exceeds the named range of
// the language.
// See also method [Language.SpellMinorUnits].
func (l Language) SpellAmount(a money.Amount, c Casing) (string, error) {
	sp := l.speller()
	lex := sp.lex()
	names := unitNamesFor(a.Curr(), l)
	// Splitting
	whole, frac, err := splitDecimal(a.Decimal(), a.Curr().Scale())
	if err != nil {
		return "", fmt.Errorf("spelling amount: %w", err)
	}
	// Main units
	s, err := spellCardinal(sp, whole)
	if err != nil {
		return "", fmt.Errorf("spelling amount: %w", err)
	}
	if lex.countOf != nil {
		s = lex.countOf(s)
	}
	// Subunits
	fracPhrase := ""
	if frac != 0 {
		fracPhrase, err = spellCardinal(sp, big.NewInt(frac))
		if err != nil {
			return "", fmt.Errorf("spelling amount: %w", err)
		}
		if lex.countOf != nil {
			fracPhrase = lex.countOf(fracPhrase)
		}
	}
	// Phrase
	var b strings.Builder
	if a.IsNeg() && (whole.Sign() != 0 || frac != 0) {
		b.WriteString(lex.negative)
		b.WriteByte(' ')
	}
	b.WriteString(s)
	b.WriteByte(' ')
	b.WriteString(names.pick(whole, lex.pluralZero))
	if fracPhrase != "" {
		b.WriteByte(' ')
		b.WriteString(lex.conj)
		b.WriteByte(' ')
		b.WriteString(fracPhrase)
		b.WriteByte(' ')
		b.WriteString(names.pickSub(frac, lex.pluralZero))
	}
	return c.apply(b.String()), nil
}

// SpellMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount and spells it.
//
//	English.SpellMinorUnits("USD", 4275, Capitalized)
//	// Forty Two dollars and Seventy Five cents
//
// SpellMinorUnits returns an error if:
//   - the currency code is not valid;
//   - the amount exceeds the named range of the language.
//
// See also method [Language.SpellAmount].
func (l Language) SpellMinorUnits(curr string, units int64, c Casing) (string, error) {
	a, err := money.NewAmountFromMinorUnits(curr, units)
	if err != nil {
		return "", fmt.Errorf("converting minor units: %w", err)
	}
	return l.SpellAmount(a, c)
}
