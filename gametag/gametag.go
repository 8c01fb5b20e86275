// Package gametag defines the two game identifiers the codec recognises.
// Each archive member's header carries one as its game field, and the key
// schedule selects its base key from it.
package gametag

import "fmt"

// GameTag identifies which of the two games an archive member belongs to.
// The numeric value is the little-endian encoding of the game's four-byte
// ASCII tag, matching the on-disk representation exactly.
type GameTag uint32

const (
	// GameA is "rc00" (0x30_30_63_72 little-endian).
	GameA GameTag = 0x3030_6372
	// GameB is "sadk" (0x6b_64_61_73 little-endian).
	GameB GameTag = 0x6b64_6173
)

// Valid reports whether g is one of the two known game tags.
func (g GameTag) Valid() bool {
	return g == GameA || g == GameB
}

// String renders the tag's four-byte ASCII form, e.g. "rc00".
func (g GameTag) String() string {
	b := []byte{byte(g), byte(g >> 8), byte(g >> 16), byte(g >> 24)}
	return string(b)
}

// Ensure String plays well with fmt's %v/%s for error messages.
var _ fmt.Stringer = GameA
