// Package strhash implements a deterministic string-stretching "hash":
// the salted input is pushed through a per-character rotate/substitute/XOR
// transform for a configurable number of rounds, then padded or truncated
// to a fixed length.
//
// This is NOT a cryptographic hash. The substitution table is reversible,
// the alphabet is tiny and there is no diffusion between characters. Do not
// use it for passwords, signatures or integrity checks; it exists for
// deterministic, reproducible string mangling only.
package strhash

import "strings"

// Reference defaults. A zero-valued Config field resolves to these.
const (
	DefaultRounds = 1000
	DefaultSalt   = "FixedDefaultSalt123"
	DefaultLength = 32
)

// xorKey is applied to every character after rotation and substitution.
const xorKey = 0x55

// padChar fills short results up to the target length.
const padChar = '0'

// vowels maps the ten substituted characters to their replacements.
// The lookup happens after rotation, so an input 'a' is never substituted
// itself; only characters that rotate INTO a vowel are.
var vowels = map[rune]rune{
	'a': '@',
	'e': '3',
	'i': '1',
	'o': '0',
	'u': 'µ',
	'A': '4',
	'E': '€',
	'I': '!',
	'O': 'Ø',
	'U': 'Û',
}

// Transform applies one pass of the per-character pipeline: rotate the code
// point by +5 modulo 256, substitute rotated vowels and XOR with 0x55.
// The output always has the same number of characters as the input; the
// empty string maps to itself.
//
// The modulo-256 rotation deliberately aliases code points above 255
// (e.g. 'Ł' (U+0141) and 'A' rotate to the same value). That matches the
// reference behavior for multibyte text and is kept as-is.
func Transform(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = (r + 5) % 256
		if sub, ok := vowels[r]; ok {
			r = sub
		}
		b.WriteRune(r ^ xorKey)
	}
	return b.String()
}

// Pad returns s adjusted to exactly length characters: short inputs are
// right-padded with '0', long inputs are truncated to the first length
// characters. Lengths are counted in code points, not bytes.
func Pad(s string, length int) string {
	if length <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) >= length {
		return string(runes[:length])
	}
	return s + strings.Repeat(string(padChar), length-len(runes))
}

// Config carries the tunable parameters of a Hasher. Zero-valued fields
// fall back to the package defaults, so Config{} reproduces the reference
// configuration exactly.
type Config struct {
	Rounds int
	Salt   string
	Length int
}

// Hasher runs the transform-and-stretch pipeline with a fixed set of
// defaults. It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	rounds int
	salt   string
	length int
}

// New returns a Hasher for the given configuration, resolving zero-valued
// fields to DefaultRounds, DefaultSalt and DefaultLength.
func New(cfg Config) *Hasher {
	h := &Hasher{
		rounds: cfg.Rounds,
		salt:   cfg.Salt,
		length: cfg.Length,
	}
	if h.rounds == 0 {
		h.rounds = DefaultRounds
	}
	if h.salt == "" {
		h.salt = DefaultSalt
	}
	if h.length == 0 {
		h.length = DefaultLength
	}
	return h
}

// Hash stretches input with the Hasher's own salt and round count.
func (h *Hasher) Hash(input string) string {
	return h.HashWith(input, "", 0)
}

// HashWith stretches input with per-call overrides. An empty salt or a zero
// round count falls back to the Hasher's configured value; this mirrors the
// reference, where zero rounds is indistinguishable from "not supplied".
// It is a quirk, not validation: pass a negative round count to get zero
// transform passes over the raw salt+input concatenation.
func (h *Hasher) HashWith(input, salt string, rounds int) string {
	if salt == "" {
		salt = h.salt
	}
	if rounds == 0 {
		rounds = h.rounds
	}
	s := salt + input
	for i := 0; i < rounds; i++ {
		s = Transform(s)
	}
	return Pad(s, h.length)
}

// Length reports the fixed output length of the Hasher.
func (h *Hasher) Length() int { return h.length }

var defaultHasher = New(Config{})

// Hash stretches input with the package defaults. The result always has
// exactly DefaultLength characters.
func Hash(input string) string {
	return defaultHasher.Hash(input)
}

// HashWith stretches input with per-call salt and rounds, falling back to
// the package defaults for empty/zero values. See Hasher.HashWith.
func HashWith(input, salt string, rounds int) string {
	return defaultHasher.HashWith(input, salt, rounds)
}
