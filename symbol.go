package huffman

import (
	"unicode"
	"unicode/utf8"
)

// Symbol represents a symbol in the alphabet, i.e. a single character of
// text.  Only Unicode scalar values are valid symbols.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol marks nodes and return values that carry no symbol.
const InvalidSymbol = Symbol(-1)

// Valid reports whether s can appear in text, i.e. is in range and is not a
// surrogate half.
func (s Symbol) Valid() bool {
	return s >= 0 && s <= MaxSymbol && utf8.ValidRune(rune(s))
}
