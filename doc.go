// Package huffman implements Huffman prefix codes over an alphabet of
// characters, trained from a frequency distribution.
//
// A Codec turns text into a string of '0' and '1' characters and back, and
// keeps running statistics about how well its input compressed.  The prefix
// tree behind each Codec is built by repeatedly merging the two least
// frequent subtrees, using the indexed heap from package minheap as the
// priority queue.  Left branches are coded as '0' and right branches as '1'.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
