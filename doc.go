/*
Package spellout converts numeric values into their written-out form in
several natural languages.
It builds on the [decimal] and [money] packages, turning a [decimal.Decimal]
or a [money.Amount] into a phrase such as "One Hundred Twenty Three" or
"Forty Two dollars and Seventy Five cents".

# Features

  - Pure functions with no global state, ensuring safe usage across multiple goroutines
  - English, French, Spanish, and German spelling, each with its own grammar rules
  - Cardinal spelling of integers, decimals, and monetary amounts
  - Currency mode that names the main unit and subunit of the amount's currency
  - Graceful fallback to English when matching arbitrary BCP 47 language tags

# Representation

The package consists of one main type: Language.
A Language is implemented as an integer index into in-memory tables holding
the vocabulary and grammar of each supported language: the words for small
numbers, the words for powers of one thousand, and the rules for joining
them into a phrase.
Numbers are decomposed into groups of three digits, each group is spelled
according to the language's grammar, and the groups are joined together
with the language's scale words.

# Supported Ranges

Each language spells numbers up to the largest power of one thousand it has
a name for.
English, French, and German name powers up to 10³³, whereas Spanish names
powers up to 10¹².
Values whose integer part reaches an unnamed power are rejected with an
error rather than spelled partially.

# Spelling Modes

The package provides plain and monetary spelling.
Plain spelling renders the integer part, a language-specific separator word
such as "point" or "virgule", and the fractional digits as a cardinal
number.
Monetary spelling renders the main unit name after the integer part and the
subunit name after the fraction, joined by a language-specific conjunction,
as in "Forty Two dollars and Seventy Five cents".

# Rounding

Fractional digits beyond the requested precision are rounded using banker's
rounding, in accordance with the rounding rules of the [decimal] package.
In monetary spelling the precision is taken from the scale of the amount's
currency, so Japanese yen are spelled without a subunit clause.

# Errors

Errors may occur during the parsing of Language values, during the parsing
of numeric strings, and when a value exceeds the named range of the target
language.
All spelling methods return the spelled phrase and an error; they never
panic on valid [decimal.Decimal] or [money.Amount] inputs.
*/
package spellout
