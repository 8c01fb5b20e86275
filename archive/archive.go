// Package archive implements the container format and the decode/encode
// pipelines that tie the cipher, LZSS codec, key schedule and CRC32
// together (spec.md §4.6).
package archive

import (
	"errors"
	"fmt"

	"github.com/ashfallgames/gacodec/cipher"
	"github.com/ashfallgames/gacodec/crc"
	"github.com/ashfallgames/gacodec/encoding"
	"github.com/ashfallgames/gacodec/gamekey"
	"github.com/ashfallgames/gacodec/gametag"
	"github.com/ashfallgames/gacodec/log"
	"github.com/ashfallgames/gacodec/lzss"
)

// Option configures a single Decode or Encode call. It never touches
// package-level state; passing no options gets the silent, no-op logger.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger attaches a logger to a single Decode or Encode call for
// diagnostic tracing (which invariant failed, payload and encoded sizes). The codec's
// leaf packages (rng, crc, gamekey, cipher, lzss) never log themselves.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolveOptions(opts []Option) options {
	o := options{logger: log.Noop()}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Magic is the fixed little-endian prefix that identifies an encoded file.
const Magic uint32 = 0x0609_1812

// HeaderSize is the fixed size in bytes of a Header on disk.
const HeaderSize = 20

// Header is the 20-byte archive member header (spec.md §6).
type Header struct {
	Magic       uint32
	Game        gametag.GameTag
	PayloadCRC  uint32
	KeyCRC      uint32
	PayloadSize uint32
}

// Sentinel error kinds. Use errors.Is against these to distinguish why a
// Decode call failed.
var (
	// ErrNotEncoded signals that the input's magic prefix does not match;
	// the caller should route the file through Encode instead.
	ErrNotEncoded = errors.New("archive: not encoded")
	// ErrBadHeader signals the file is shorter than HeaderSize, the magic
	// is present but wrong, or the game tag is unknown.
	ErrBadHeader = errors.New("archive: bad header")
	// ErrKeyMismatch signals the derived key's CRC32 does not match the
	// header's key_crc field, typically from a renamed file.
	ErrKeyMismatch = errors.New("archive: key mismatch")
	// ErrSizeMismatch signals the decompressed size does not match the
	// header's payload_size field.
	ErrSizeMismatch = errors.New("archive: size mismatch")
	// ErrPayloadMismatch signals the decompressed payload's CRC32 does
	// not match the header's payload_crc field.
	ErrPayloadMismatch = errors.New("archive: payload mismatch")
)

// IsEncoded reports whether data begins with the archive magic prefix,
// without validating the rest of the header.
func IsEncoded(data []byte) bool {
	return len(data) >= 4 && encoding.Read32(data, 0) == Magic
}

// ParseHeader reads the 20-byte header from the front of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: input is %d bytes, need at least %d", ErrBadHeader, len(data), HeaderSize)
	}

	magic := encoding.Read32(data, 0)
	if magic != Magic {
		return Header{}, fmt.Errorf("%w: magic %#08x, want %#08x", ErrBadHeader, magic, Magic)
	}

	game := gametag.GameTag(encoding.Read32(data, 4))
	if !game.Valid() {
		return Header{}, fmt.Errorf("%w: unknown game tag %#08x", ErrBadHeader, uint32(game))
	}

	return Header{
		Magic:       magic,
		Game:        game,
		PayloadCRC:  encoding.Read32(data, 8),
		KeyCRC:      encoding.Read32(data, 12),
		PayloadSize: encoding.Read32(data, 16),
	}, nil
}

// put writes h to a fresh HeaderSize-byte buffer.
func (h Header) put() []byte {
	buf := make([]byte, HeaderSize)
	encoding.Put32(buf, 0, h.Magic)
	encoding.Put32(buf, 4, uint32(h.Game))
	encoding.Put32(buf, 8, h.PayloadCRC)
	encoding.Put32(buf, 12, h.KeyCRC)
	encoding.Put32(buf, 16, h.PayloadSize)
	return buf
}

// Decode runs the decode pipeline over an encoded archive member,
// returning the game it belongs to and its original payload bytes.
//
// It returns an error wrapping ErrNotEncoded if data does not begin with
// Magic, so the caller can fall back to Encode without reading further
// bytes (spec.md §8, property 3).
func Decode(filename string, data []byte, opts ...Option) (gametag.GameTag, []byte, error) {
	o := resolveOptions(opts)

	if !IsEncoded(data) {
		o.logger.Debug("not encoded", log.F("filename", filename))
		return 0, nil, fmt.Errorf("%w: %s", ErrNotEncoded, filename)
	}

	header, err := ParseHeader(data)
	if err != nil {
		o.logger.Warn("bad header", log.F("filename", filename), log.F("error", err))
		return 0, nil, fmt.Errorf("%s: %w", filename, err)
	}

	key := gamekey.Derive(filename, header.Game)
	if keyCRC := crc.Sum(key[:]); keyCRC != header.KeyCRC {
		o.logger.Warn("key mismatch", log.F("filename", filename), log.F("game", header.Game.String()))
		return 0, nil, fmt.Errorf("%w: %s: have %#08x, want %#08x", ErrKeyMismatch, filename, keyCRC, header.KeyCRC)
	}

	body := encoding.SubArrayFromStart(data, HeaderSize)
	cipher.Apply(body, key)

	decoded := lzss.Decode(body)

	if uint32(len(decoded)) != header.PayloadSize {
		o.logger.Warn("size mismatch", log.F("filename", filename), log.F("have", len(decoded)), log.F("want", header.PayloadSize))
		return 0, nil, fmt.Errorf("%w: %s: have %d bytes, want %d", ErrSizeMismatch, filename, len(decoded), header.PayloadSize)
	}
	if payloadCRC := crc.Sum(decoded); payloadCRC != header.PayloadCRC {
		o.logger.Warn("payload mismatch", log.F("filename", filename))
		return 0, nil, fmt.Errorf("%w: %s: have %#08x, want %#08x", ErrPayloadMismatch, filename, payloadCRC, header.PayloadCRC)
	}

	o.logger.Debug("decoded", log.F("filename", filename), log.F("payload_size", len(decoded)))
	return header.Game, decoded, nil
}

// Encode runs the encode pipeline over a raw payload, producing the full
// archive member byte buffer including its 20-byte header. Encode is
// infallible given valid inputs (spec.md §6).
func Encode(filename string, game gametag.GameTag, payload []byte, opts ...Option) []byte {
	o := resolveOptions(opts)

	key := gamekey.Derive(filename, game)

	compressed := lzss.Encode(payload)
	cipher.Apply(compressed, key)

	header := Header{
		Magic:       Magic,
		Game:        game,
		PayloadCRC:  crc.Sum(payload),
		KeyCRC:      crc.Sum(key[:]),
		PayloadSize: uint32(len(payload)),
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, header.put()...)
	out = append(out, compressed...)

	o.logger.Debug("encoded", log.F("filename", filename), log.F("payload_size", len(payload)), log.F("encoded_size", len(out)))
	return out
}
