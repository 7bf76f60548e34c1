package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters with the first bit leftmost.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(hc) && hc[:len(prefix)] == prefix
}

// String returns the quoted string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
