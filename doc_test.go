package spellout_test

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
	"github.com/govalues/spellout"
	"golang.org/x/text/language"
)

// In this example, the total of a cheque is spelled out in words, the way
// banks require it to be written on the amount line.
func Example_chequeWriting() {
	total := money.MustParseAmount("USD", "1234.56")

	words, err := spellout.English.SpellAmount(total, spellout.Capitalized)
	if err != nil {
		panic(err)
	}

	fmt.Printf("PAY: %v\n", words)

	// Output:
	// PAY: One Thousand Two Hundred Thirty Four dollars and Fifty Six cents
}

// In this example, an invoice total is spelled out in the language
// requested by each customer's Accept-Language header.
func Example_invoiceLocalization() {
	total := money.MustParseAmount("EUR", "149.99")

	for _, accept := range []string{"en-US", "fr-CA", "es-MX", "de-AT"} {
		lang := spellout.MatchLang(language.MustParse(accept))
		words, err := lang.SpellAmount(total, spellout.Uncapitalized)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v: %v\n", lang, words)
	}

	// Output:
	// en: one hundred forty nine euros and ninety nine cents
	// fr: cent quarante-neuf euros et quatre-vingt-dix-neuf centimes
	// es: ciento cuarenta y nueve euros con noventa y nueve céntimos
	// de: einhundertneunundvierzig euro und neunundneunzig cent
}

func ExampleParseLang() {
	l, err := spellout.ParseLang("fr")
	if err != nil {
		panic(err)
	}
	fmt.Println(l)
	// Output: fr
}

func ExampleMustParseLang() {
	l := spellout.MustParseLang("German")
	fmt.Println(l)
	// Output: de
}

func ExampleMatchLang() {
	fmt.Println(spellout.MatchLang(language.MustParse("fr-CA")))
	fmt.Println(spellout.MatchLang(language.MustParse("es-419")))
	fmt.Println(spellout.MatchLang(language.MustParse("ja-JP")))
	// Output:
	// fr
	// es
	// en
}

func ExampleLanguage_String() {
	l := spellout.Spanish
	fmt.Println(l.String())
	// Output: es
}

func ExampleLanguage_Code() {
	e := spellout.English
	f := spellout.French
	g := spellout.German
	fmt.Println(e.Code())
	fmt.Println(f.Code())
	fmt.Println(g.Code())
	// Output:
	// en
	// fr
	// de
}

func ExampleLanguage_Name() {
	e := spellout.English
	s := spellout.Spanish
	g := spellout.German
	fmt.Println(e.Name())
	fmt.Println(s.Name())
	fmt.Println(g.Name())
	// Output:
	// English
	// Spanish
	// German
}

func ExampleLanguage_Tag() {
	l := spellout.German
	fmt.Println(l.Tag())
	// Output: de
}

func ExampleLanguage_Format() {
	fmt.Printf("%v\n", spellout.English)
	fmt.Printf("%q\n", spellout.French)
	// Output:
	// en
	// "fr"
}

func ExampleLanguage_MarshalText() {
	l := spellout.MustParseLang("en")
	b, err := l.MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: en
}

func ExampleLanguage_UnmarshalText() {
	l := spellout.English
	b := []byte("de")
	err := l.UnmarshalText(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(l)
	// Output: de
}

func ExampleLanguage_SpellInt64() {
	words, err := spellout.English.SpellInt64(42, spellout.Capitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	words, err = spellout.German.SpellInt64(42, spellout.Uncapitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output:
	// Forty Two
	// zweiundvierzig
}

func ExampleLanguage_SpellBigInt() {
	z := new(big.Int).Exp(big.NewInt(10), big.NewInt(33), nil)
	words, err := spellout.English.SpellBigInt(z, spellout.Capitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: One Decillion
}

func ExampleLanguage_Spell() {
	d := decimal.MustParse("42.75")
	words, err := spellout.English.Spell(d, spellout.Capitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: Forty Two point Seventy Five
}

func ExampleLanguage_SpellExact() {
	d := decimal.MustParse("42.75")
	for prec := 2; prec >= 0; prec-- {
		words, err := spellout.English.SpellExact(d, prec, spellout.Capitalized)
		if err != nil {
			panic(err)
		}
		fmt.Println(words)
	}
	// Output:
	// Forty Two point Seventy Five
	// Forty Two point Eight
	// Forty Three
}

func ExampleLanguage_SpellFloat64() {
	words, err := spellout.French.SpellFloat64(42.75, spellout.Uncapitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: quarante-deux virgule soixante-quinze
}

func ExampleLanguage_SpellString() {
	words, err := spellout.Spanish.SpellString("42,75", spellout.Uncapitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: cuarenta y dos coma setenta y cinco
}

func ExampleLanguage_SpellAmount() {
	a := money.MustParseAmount("USD", "42.75")
	words, err := spellout.English.SpellAmount(a, spellout.Capitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: Forty Two dollars and Seventy Five cents
}

func ExampleLanguage_SpellMinorUnits() {
	words, err := spellout.English.SpellMinorUnits("USD", 4275, spellout.Capitalized)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: Forty Two dollars and Seventy Five cents
}
