package crc

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumEmpty(t *testing.T) {
	assert.Equal(t, uint32(0), Sum(nil))
	assert.Equal(t, uint32(0), Sum([]byte{}))
}

func TestSumConformanceVector(t *testing.T) {
	assert.Equal(t, uint32(0xCBF43926), Sum([]byte("123456789")))
}

func TestSumMatchesStandardLibrary(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte("abcde"),
		bytes.Repeat([]byte{0x00}, 1024),
		bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog"), 7),
	}

	for _, in := range inputs {
		want := crc32.ChecksumIEEE(in)
		got := Sum(in)
		assert.Equalf(t, want, got, "mismatch for input of length %d", len(in))
	}
}

func TestSumVariesWithLengthMod4(t *testing.T) {
	// Exercises the trailing-byte loop for 0..3 leftover bytes.
	base := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	for n := 0; n <= len(base); n++ {
		in := base[:n]
		want := crc32.ChecksumIEEE(in)
		got := Sum(in)
		assert.Equalf(t, want, got, "mismatch at length %d", n)
	}
}
