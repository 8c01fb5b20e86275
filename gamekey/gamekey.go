// Package gamekey derives the 16-byte cipher key for an archive member
// from its filename and game tag, per spec.md §4.3.
package gamekey

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/ashfallgames/gacodec/crc"
	"github.com/ashfallgames/gacodec/gametag"
	"github.com/ashfallgames/gacodec/rng"
)

// encodeWindows1252 encodes s as CP-1252, replacing characters outside the
// CP-1252 repertoire with '?' rather than failing, matching that code
// page's lossy encoder.
func encodeWindows1252(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// Size is the length in bytes of a derived key.
const Size = 16

// Key is a fixed-size derived cipher key.
type Key [Size]byte

var baseKeyA = Key{0xC9, 0x59, 0x46, 0xCA, 0xD9, 0xF0, 0x4F, 0x0A, 0xA1, 0x00, 0xAA, 0xB8, 0xCB, 0xE8, 0xDB, 0x6B}
var baseKeyB = Key{0xBD, 0x8C, 0xC2, 0xBD, 0x30, 0x67, 0x4B, 0xF8, 0xB4, 0x9B, 0x1B, 0xF9, 0xF6, 0x82, 0x2E, 0xF4}

// baseKey returns the big-endian base key for g.
func baseKey(g gametag.GameTag) Key {
	if g == gametag.GameB {
		return baseKeyB
	}
	return baseKeyA
}

// Derive computes the 16-byte key for filename under game g.
//
// The filename is ASCII case-folded first. Files ending in ".s2m" or
// ".sav" (after folding) get the base key verbatim; every other
// filename perturbs the base key with a PRNG stream seeded from the
// CRC32 of the filename's WINDOWS-1252 encoding.
func Derive(filename string, g gametag.GameTag) Key {
	lower := asciiLower(filename)
	base := baseKey(g)

	if hasSuffix(lower, ".s2m") || hasSuffix(lower, ".sav") {
		return base
	}

	seed := crc.Sum(encodeWindows1252(lower))

	gen := rng.NewSeeded(seed)
	var out Key
	for i := range out {
		out[i] = base[i] ^ gen.NextByte()
	}
	return out
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
