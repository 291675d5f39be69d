package spellout

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Language type represents a natural language in which numbers can be
// spelled out.
// The zero value is [English].
//
// Language is implemented as an integer index into in-memory tables that
// store the vocabulary and grammar of each supported language.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Language value.
//
// When persisting a language value, use the two-letter code returned by
// the [Language.Code] method, rather than the integer index, as mapping
// between index and a particular language may change in future versions.
type Language uint8

// Supported languages, indexed by their [ISO 639-1] code.
//
// [ISO 639-1]: https://en.wikipedia.org/wiki/ISO_639-1
const (
	English Language = iota
	French
	Spanish
	German
)

// ErrUnknownLanguage is returned when a string does not name a supported
// language.
var ErrUnknownLanguage = errors.New("unknown language")

var (
	codeLookup = [...]string{
		English: "en",
		French:  "fr",
		Spanish: "es",
		German:  "de",
	}
	nameLookup = [...]string{
		English: "English",
		French:  "French",
		Spanish: "Spanish",
		German:  "German",
	}
	tagLookup = [...]language.Tag{
		English: language.English,
		French:  language.French,
		Spanish: language.Spanish,
		German:  language.German,
	}
	spellerLookup = [...]speller{
		English: englishSpeller{&englishLexicon},
		French:  frenchSpeller{&frenchLexicon},
		Spanish: spanishSpeller{&spanishLexicon},
		German:  germanSpeller{&germanLexicon},
	}
	langLookup = map[string]Language{
		"en": English, "EN": English, "english": English, "English": English,
		"fr": French, "FR": French, "french": French, "French": French,
		"es": Spanish, "ES": Spanish, "spanish": Spanish, "Spanish": Spanish,
		"de": German, "DE": German, "german": German, "German": German,
	}
)

// langMatcher's tag order mirrors the Language constants, with English
// first so that it doubles as the fallback.
var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Spanish,
	language.German,
})

// ParseLang converts a string to language.
// The input string must be in one of the following formats:
//
//	en
//	EN
//	english
//	English
//
// ParseLang returns an error if the string does not name a supported language.
// See also method [MatchLang], which never fails.
func ParseLang(lang string) (Language, error) {
	l, ok := langLookup[lang]
	if !ok {
		return English, ErrUnknownLanguage
	}
	return l, nil
}

// MustParseLang is like [ParseLang] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding languages.
func MustParseLang(lang string) Language {
	l, err := ParseLang(lang)
	if err != nil {
		panic(fmt.Sprintf("ParseLang(%q) failed: %v", lang, err))
	}
	return l
}

// MatchLang returns the supported language that most closely matches the
// given [BCP 47] tag, so "fr-CA" matches [French].
// For tags that match no supported language at all, it falls back to
// [English] rather than failing.
// See also constructor [ParseLang].
//
// [BCP 47]: https://en.wikipedia.org/wiki/IETF_language_tag
func MatchLang(tag language.Tag) Language {
	_, i, _ := langMatcher.Match(tag)
	return Language(i)
}

// String method implements the [fmt.Stringer] interface and returns
// the two-letter code of the Language value.
// See also method [Language.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (l Language) String() string {
	return l.Code()
}

// Code returns the two-letter code assigned to the language by the
// [ISO 639-1] standard.
// This method always returns a valid code.
//
// [ISO 639-1]: https://en.wikipedia.org/wiki/ISO_639-1
func (l Language) Code() string {
	return codeLookup[l]
}

// Name returns the English name of the language.
func (l Language) Name() string {
	return nameLookup[l]
}

// Tag returns the [language.Tag] of the language, suitable for use with
// the [golang.org/x/text] packages.
func (l Language) Tag() language.Tag {
	return tagLookup[l]
}

// speller returns the speller holding the language's vocabulary and grammar.
func (l Language) speller() speller {
	return spellerLookup[l]
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseLang].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (l *Language) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*l, err = ParseLang(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", English, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 2-letter code.
// See also method [Language.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (l Language) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 4)
	text = append(text, '"')
	text = append(text, l.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseLang].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (l *Language) UnmarshalText(text []byte) error {
	var err error
	*l, err = ParseLang(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", English, err)
	}
	return err
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends a 2-letter code.
// See also method [Language.Code].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (l Language) AppendText(text []byte) ([]byte, error) {
	return append(text, l.Code()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 2-letter code.
// See also method [Language.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [ParseLang].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (l *Language) UnmarshalBinary(text []byte) error {
	var err error
	*l, err = ParseLang(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", English, err)
	}
	return err
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary always appends a 2-letter code.
// See also method [Language.Code].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (l Language) AppendBinary(data []byte) ([]byte, error) {
	return append(data, l.Code()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns a 2-letter code.
// See also method [Language.Code].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (l Language) MarshalBinary() ([]byte, error) {
	return []byte(l.Code()), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also constructor [ParseLang].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (l *Language) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*l, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, English, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a 2-letter code.
// See also method [Language.Code].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (l Language) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, l.bsonString(), nil
}

// parseBSONString parses a BSON string to language.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Language, error) {
	if len(data) < 4 {
		return English, fmt.Errorf("%w: invalid data length %v", ErrUnknownLanguage, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	n := int(int32(u)) //nolint:gosec
	if n < 1 || len(data) < n+4 {
		return English, fmt.Errorf("%w: invalid string length %v", ErrUnknownLanguage, n)
	}
	if data[n+4-1] != 0 {
		return English, fmt.Errorf("%w: invalid null terminator %v", ErrUnknownLanguage, data[n+4-1])
	}
	s := string(data[4 : n+4-1])
	return ParseLang(s)
}

// bsonString returns the BSON string representation of the language.
// The byte order of the result is little-endian.
func (l Language) bsonString() []byte {
	s := l.Code()
	n := len(s) + 1
	data := make([]byte, 4+n)
	data[0] = byte(n)
	data[1] = byte(n >> 8)
	data[2] = byte(n >> 16)
	data[3] = byte(n >> 24)
	copy(data[4:], s)
	data[4+n-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (l *Language) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*l, err = ParseLang(value)
	case []byte:
		*l, err = ParseLang(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", English, NullLanguage{}, English)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, English, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (l Language) Value() (driver.Value, error) {
	return l.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description     |
//	| ------ | ------- | --------------- |
//	| %s, %v | en      | Language        |
//	| %q     | "en"    | Quoted language |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (l Language) Format(state fmt.State, verb rune) {
	// Language code
	code := l.Code()
	codelen := len(code)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + codelen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Language code
	for i := range codelen {
		buf[pos] = code[codelen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(spellout.Language="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// NullLanguage represents a language that can be null.
// Its zero value is null.
// NullLanguage is not thread-safe.
type NullLanguage struct {
	Language Language
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Language.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullLanguage) Scan(value any) error {
	if value == nil {
		n.Language = English
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Language.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Language.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullLanguage) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Language.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Language.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullLanguage) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Language = English
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Language.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Language.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullLanguage) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Language.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Language.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullLanguage) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Language = English
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Language.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Language.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullLanguage) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Language.MarshalBSONValue()
}
