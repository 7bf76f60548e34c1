package huffman

import (
	"math"
	mathbits "math/bits"
)

// log2uint32 returns the number of bits needed to represent x, treating 0 as
// 1.  For an alphabet of n symbols this is a lower bound on the depth of the
// deepest leaf, and is used to presize traversal stacks.
func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// addSaturating returns a+b, or math.MaxUint64 if the sum overflows.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
