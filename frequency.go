package huffman

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Frequencies maps each Symbol of an alphabet to its number of occurrences.
//
// A usable distribution has at least two symbols, no negative counts, and a
// positive total.  Symbols with a count of zero are permitted; they still
// receive a code.
type Frequencies map[Symbol]int

// CountFrequencies builds a distribution by counting every character of seed.
// The seed must be valid UTF-8 and contain at least two distinct characters.
func CountFrequencies(seed string) (Frequencies, error) {
	if seed == "" {
		return nil, fmt.Errorf("huffman: empty seed: %w", ErrInvalidArgument)
	}
	if !utf8.ValidString(seed) {
		return nil, fmt.Errorf("huffman: seed is not valid UTF-8: %w", ErrInvalidArgument)
	}

	freqs := make(Frequencies)
	for _, ch := range seed {
		freqs[Symbol(ch)]++
	}
	if len(freqs) < 2 {
		return nil, fmt.Errorf("huffman: seed has %d distinct symbol, need at least 2: %w", len(freqs), ErrInvalidArgument)
	}
	return freqs, nil
}

// Symbols returns the symbols of the distribution in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make(bySymbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
// Negative counts are ignored.
func (freqs Frequencies) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		if freq > 0 {
			total = addSaturating(total, uint64(freq))
		}
	}
	return total
}

// Validate reports whether this distribution can train a Codec.
func (freqs Frequencies) Validate() error {
	if len(freqs) < 2 {
		return fmt.Errorf("huffman: alphabet has %d symbols, need at least 2: %w", len(freqs), ErrInvalidArgument)
	}
	for _, symbol := range freqs.Symbols() {
		if !symbol.Valid() {
			return fmt.Errorf("huffman: invalid symbol %d: %w", symbol, ErrInvalidArgument)
		}
		if freq := freqs[symbol]; freq < 0 {
			return fmt.Errorf("huffman: symbol %q has negative frequency %d: %w", symbol, freq, ErrInvalidArgument)
		}
	}
	if freqs.Total() == 0 {
		return fmt.Errorf("huffman: all frequencies are zero: %w", ErrInvalidArgument)
	}
	return nil
}

func (freqs Frequencies) clone() Frequencies {
	out := make(Frequencies, len(freqs))
	for symbol, freq := range freqs {
		out[symbol] = freq
	}
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
