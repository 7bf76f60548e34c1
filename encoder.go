package huffman

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encode returns the concatenated codes for each character of text, in
// order.  Empty text encodes to an empty string.
//
// Encode fails with ErrInvalidArgument if text is not valid UTF-8 or contains
// a character outside the trained alphabet.  The whole input is checked
// before any statistics are updated, so a failed call leaves the Codec
// unchanged.
func (c *Codec) Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("huffman: encode: input is not valid UTF-8: %w", ErrInvalidArgument)
	}

	var numSymbols uint64
	var numBits int
	for offset, ch := range text {
		hc, found := c.codes[Symbol(ch)]
		if !found {
			return "", fmt.Errorf("huffman: encode: symbol %q at byte offset %d is not in the alphabet: %w", ch, offset, ErrInvalidArgument)
		}
		numSymbols++
		numBits += hc.Size()
	}

	var sb strings.Builder
	sb.Grow(numBits)
	for _, ch := range text {
		sb.WriteString(string(c.codes[Symbol(ch)]))
	}

	c.inputSymbols += numSymbols
	c.outputBits += uint64(numBits)
	c.encoded = true
	return sb.String(), nil
}
