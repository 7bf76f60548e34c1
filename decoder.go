package huffman

import (
	"fmt"
	"strings"
)

// Decode inverts Encode: it walks the prefix tree from the root, one bit per
// step ('0' for left, '1' for right), emits the symbol at each leaf, and
// restarts at the root until bits is exhausted.
//
// Decode fails with ErrInvalidArgument if bits contains a character other
// than '0' or '1', or if it ends partway through a code.  Decode does not
// affect the statistics reported by CompressionRatio.
func (c *Codec) Decode(bits string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(bits) / max(c.minSize, 1))

	n := c.root
	for offset := 0; offset < len(bits); offset++ {
		switch bits[offset] {
		case '0':
			n = n.left
		case '1':
			n = n.right
		default:
			return "", fmt.Errorf("huffman: decode: invalid bit %q at offset %d: %w", bits[offset], offset, ErrInvalidArgument)
		}
		if n.isLeaf() {
			sb.WriteRune(rune(n.symbol))
			n = c.root
		}
	}
	if n != c.root {
		return "", fmt.Errorf("huffman: decode: input ends partway through a code: %w", ErrInvalidArgument)
	}
	return sb.String(), nil
}
