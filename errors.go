package huffman

import (
	"errors"

	"github.com/chronos-tachyon/huffman/v2/minheap"
)

var (
	// ErrInvalidArgument is returned for malformed alphabets, symbols
	// outside the trained alphabet, and undecodable bit strings.
	ErrInvalidArgument = minheap.ErrInvalidArgument

	// ErrNotFound is returned when looking up something that is absent.
	ErrNotFound = minheap.ErrNotFound

	// ErrInvalidState is returned by CompressionRatio before anything has
	// been encoded.
	ErrInvalidState = errors.New("invalid state")
)
