package huffman

import (
	"errors"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs, err := CountFrequencies("aabbbcccccdddddddd")
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	expect := Frequencies{'a': 2, 'b': 3, 'c': 5, 'd': 8}
	if len(freqs) != len(expect) {
		t.Errorf("wrong number of symbols: expected %d, got %d", len(expect), len(freqs))
	}
	for symbol, freq := range expect {
		if freqs[symbol] != freq {
			t.Errorf("wrong frequency for %q: expected %d, got %d", symbol, freq, freqs[symbol])
		}
	}
	if total := freqs.Total(); total != 18 {
		t.Errorf("wrong total: expected 18, got %d", total)
	}
}

func TestCountFrequencies_Errors(t *testing.T) {
	type testRow struct {
		name string
		seed string
	}

	testData := [...]testRow{
		{name: "empty", seed: ""},
		{name: "one-char", seed: "a"},
		{name: "one-symbol", seed: "aaaaaa"},
		{name: "bad-utf8", seed: "ab\xff"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := CountFrequencies(row.seed)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestFrequencies_Validate(t *testing.T) {
	type testRow struct {
		name  string
		freqs Frequencies
		ok    bool
	}

	testData := [...]testRow{
		{name: "nil", freqs: nil},
		{name: "empty", freqs: Frequencies{}},
		{name: "one-symbol", freqs: Frequencies{'a': 4}},
		{name: "negative", freqs: Frequencies{'a': 4, 'b': -1}},
		{name: "negative-symbol", freqs: Frequencies{'a': 4, -7: 1}},
		{name: "surrogate", freqs: Frequencies{'a': 4, 0xD800: 1}},
		{name: "beyond-max", freqs: Frequencies{'a': 4, MaxSymbol + 1: 1}},
		{name: "all-zero", freqs: Frequencies{'a': 0, 'b': 0}},
		{name: "some-zero", freqs: Frequencies{'a': 0, 'b': 3}, ok: true},
		{name: "two", freqs: Frequencies{'a': 1, 'b': 1}, ok: true},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := row.freqs.Validate()
			if row.ok && err != nil {
				t.Errorf("expected success, got %v", err)
			}
			if !row.ok && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestFrequencies_Symbols(t *testing.T) {
	freqs := Frequencies{'z': 1, 'a': 1, 'é': 1, 'M': 1}
	expect := []Symbol{'M', 'a', 'z', 'é'}
	actual := freqs.Symbols()
	if len(actual) != len(expect) {
		t.Fatalf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
	for i := range expect {
		if expect[i] != actual[i] {
			t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
			break
		}
	}
}
