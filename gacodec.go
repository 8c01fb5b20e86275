// Package gacodec provides tools for decoding and encoding GAME_A/GAME_B
// archive members. This file serves as a facade, re-exporting the types
// and functions of the sub-packages that do the actual work.
package gacodec

import (
	"github.com/ashfallgames/gacodec/archive"
	"github.com/ashfallgames/gacodec/gametag"
)

// Type aliases for the facade.
type (
	GameTag = gametag.GameTag
	Header  = archive.Header
	Option  = archive.Option
)

// Known game tags.
const (
	GameA = gametag.GameA
	GameB = gametag.GameB
)

// Magic is the archive member header's fixed little-endian prefix.
const Magic = archive.Magic

// Sentinel error kinds, re-exported for callers using errors.Is against
// the facade rather than importing package archive directly.
var (
	ErrNotEncoded      = archive.ErrNotEncoded
	ErrBadHeader       = archive.ErrBadHeader
	ErrKeyMismatch     = archive.ErrKeyMismatch
	ErrSizeMismatch    = archive.ErrSizeMismatch
	ErrPayloadMismatch = archive.ErrPayloadMismatch
)

// WithLogger attaches a logger to a single Decode or Encode call.
var WithLogger = archive.WithLogger

// IsEncoded reports whether data begins with the archive magic prefix.
func IsEncoded(data []byte) bool {
	return archive.IsEncoded(data)
}

// Decode runs the decode pipeline over an encoded archive member.
func Decode(filename string, data []byte, opts ...Option) (GameTag, []byte, error) {
	return archive.Decode(filename, data, opts...)
}

// Encode runs the encode pipeline over a raw payload.
func Encode(filename string, game GameTag, payload []byte, opts ...Option) []byte {
	return archive.Encode(filename, game, payload, opts...)
}
