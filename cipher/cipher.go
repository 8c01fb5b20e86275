// Package cipher implements the reversible, keyed byte transform used to
// obfuscate an archive member's compressed body (spec.md §4.4).
//
// The transform is its own inverse: every byte is XORed with a value that
// depends only on its position, the key, and two pseudorandom masks
// derived from the key — applying Apply twice with the same key restores
// the original bytes.
package cipher

import (
	"github.com/ashfallgames/gacodec/crc"
	"github.com/ashfallgames/gacodec/gamekey"
	"github.com/ashfallgames/gacodec/rng"
)

const (
	flavor1MinLen = 0x80
	flavor1Mask   = 0x7F
	flavor2MinLen = 0x11
	flavor2Mask   = 0x0F
	stepMin       = 0x2000
	stepMask      = 0x1FFF
)

// Apply transforms data in place using the 16-byte key. Empty data is
// left unchanged. Calling Apply a second time with the same key undoes
// the first call.
func Apply(data []byte, key gamekey.Key) {
	if len(data) == 0 {
		return
	}

	gen := rng.NewSeeded(crc.Sum(key[:]))

	flavor1 := make([]byte, int(gen.Next()&flavor1Mask)+flavor1MinLen)
	for i := range flavor1 {
		flavor1[i] = gen.NextByte()
	}

	flavor2 := make([]byte, int(gen.Next()&flavor2Mask)+flavor2MinLen)
	for i := range flavor2 {
		flavor2[i] = gen.NextByte()
	}

	start := int(gen.Next()) % len(data)
	step := int(gen.Next()&stepMask) + stepMin

	for i := 0; i < len(data); i++ {
		data[i] ^= flavor1[i%len(flavor1)]
	}

	for i := start; i < len(data); i += step {
		idx := (int(key[i%gamekey.Size]) ^ i) % len(flavor2)
		data[i] ^= flavor2[idx]
	}
}
