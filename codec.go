package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// Codec encodes text into Huffman-coded bit strings and decodes them again,
// using a prefix code trained from a frequency distribution.
//
// The code table is fixed at construction.  Encode accumulates statistics for
// CompressionRatio, so a Codec is not safe for concurrent use; callers must
// serialize access to a given instance.
type Codec struct {
	root        *node
	codes       map[Symbol]Code
	symbols     []Symbol
	freqs       Frequencies
	minSize     int
	maxSize     int
	fingerprint uint64

	inputSymbols uint64
	outputBits   uint64
	encoded      bool
}

// Option configures NewCodec and NewCodecFromSeed.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives a debug record describing each
// constructed code.  The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewCodec trains a Codec from an explicit frequency distribution.  The
// distribution is copied.
func NewCodec(freqs Frequencies, opts ...Option) (*Codec, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	root, err := buildTree(freqs)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		root:    root,
		codes:   buildCodes(root, len(freqs)),
		symbols: freqs.Symbols(),
		freqs:   freqs.clone(),
	}
	c.minSize, c.maxSize = c.codes[c.symbols[0]].Size(), 0
	for _, symbol := range c.symbols {
		size := c.codes[symbol].Size()
		if c.minSize > size {
			c.minSize = size
		}
		if c.maxSize < size {
			c.maxSize = size
		}
	}
	c.fingerprint = computeFingerprint(c.symbols, c.codes)

	if o.logger != nil {
		o.logger.Debug("huffman: built code",
			"symbols", len(c.symbols),
			"minSize", c.minSize,
			"maxSize", c.maxSize,
			"fingerprint", fmt.Sprintf("%016x", c.fingerprint),
		)
	}
	return c, nil
}

// NewCodecFromSeed trains a Codec from the character counts of seed.  See
// CountFrequencies.
func NewCodecFromSeed(seed string, opts ...Option) (*Codec, error) {
	freqs, err := CountFrequencies(seed)
	if err != nil {
		return nil, err
	}
	return NewCodec(freqs, opts...)
}

// CompressionRatio returns the total number of bits output by Encode divided
// by the total number of symbols input to Encode, with each input symbol
// costed at 16 bits.  It fails with ErrInvalidState if Encode has never
// succeeded.
func (c *Codec) CompressionRatio() (float64, error) {
	if !c.encoded {
		return 0, fmt.Errorf("huffman: compression ratio requested before any input was encoded: %w", ErrInvalidState)
	}
	return float64(c.outputBits) / (float64(c.inputSymbols) * 16.0), nil
}

// ExpectedEncodingLength returns the average code size in bits, weighted by
// the trained frequency of each symbol.
func (c *Codec) ExpectedEncodingLength() float64 {
	total := float64(c.freqs.Total())
	var expect float64
	for _, symbol := range c.symbols {
		expect += float64(c.codes[symbol].Size()) * (float64(c.freqs[symbol]) / total)
	}
	return expect
}

// InputSymbols returns the number of symbols encoded so far.
func (c *Codec) InputSymbols() uint64 {
	return c.inputSymbols
}

// OutputBits returns the number of bits produced by Encode so far.
func (c *Codec) OutputBits() uint64 {
	return c.outputBits
}

// Code returns the code assigned to symbol.
func (c *Codec) Code(symbol Symbol) (Code, bool) {
	hc, found := c.codes[symbol]
	return hc, found
}

// Codes returns a copy of the code table.
func (c *Codec) Codes() map[Symbol]Code {
	out := make(map[Symbol]Code, len(c.codes))
	for symbol, hc := range c.codes {
		out[symbol] = hc
	}
	return out
}

// Symbols returns the trained alphabet in ascending order.
func (c *Codec) Symbols() []Symbol {
	out := make([]Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Frequencies returns a copy of the distribution this Codec was trained on.
func (c *Codec) Frequencies() Frequencies {
	return c.freqs.clone()
}

// MinSize is the bit length of the shortest code.
func (c *Codec) MinSize() int {
	return c.minSize
}

// MaxSize is the bit length of the longest code.
func (c *Codec) MaxSize() int {
	return c.maxSize
}

// Fingerprint returns a 64-bit digest of the code table.  Codecs with equal
// fingerprints assign the same code to every symbol.
func (c *Codec) Fingerprint() uint64 {
	return c.fingerprint
}

// Compatible reports whether other can decode the output of this Codec and
// vice versa.
func (c *Codec) Compatible(other *Codec) bool {
	if c.fingerprint != other.fingerprint || len(c.codes) != len(other.codes) {
		return false
	}
	for symbol, hc := range c.codes {
		if other.codes[symbol] != hc {
			return false
		}
	}
	return true
}

// String returns a brief description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, with coded lengths of %d .. %d bits)", len(c.symbols), c.minSize, c.maxSize)
}

var _ fmt.Stringer = (*Codec)(nil)

// Dump writes a programmer-readable debugging dump of the Codec's current
// state to the given writer.
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", c.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", c.maxSize)
	fmt.Fprintf(&buf, "\tInputSymbols() = %d\n", c.inputSymbols)
	fmt.Fprintf(&buf, "\tOutputBits() = %d\n", c.outputBits)
	for _, symbol := range c.symbols {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", symbol, c.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func computeFingerprint(symbols []Symbol, codes map[Symbol]Code) uint64 {
	d := xxhash.New()
	var scratch [8]byte
	for _, symbol := range symbols {
		hc := codes[symbol]
		binary.LittleEndian.PutUint32(scratch[0:4], uint32(symbol))
		binary.LittleEndian.PutUint32(scratch[4:8], uint32(hc.Size()))
		_, _ = d.Write(scratch[:])
		_, _ = d.WriteString(string(hc))
	}
	return d.Sum64()
}
