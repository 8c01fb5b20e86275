package archive

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashfallgames/gacodec/crc"
	"github.com/ashfallgames/gacodec/encoding"
	"github.com/ashfallgames/gacodec/gametag"
	"github.com/ashfallgames/gacodec/log"
)

func TestRoundTripPayloadExact(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cases := []struct {
		filename string
		game     gametag.GameTag
		size     int
	}{
		{"save.sav", gametag.GameA, 0},
		{"a.bin", gametag.GameA, 16},
		{"turn-07.dat", gametag.GameB, 2048},
		{"empire.s2m", gametag.GameB, 1},
	}

	for _, c := range cases {
		payload := make([]byte, c.size)
		r.Read(payload)

		encoded := Encode(c.filename, c.game, payload)
		game, decoded, err := Decode(c.filename, encoded)
		require.NoError(t, err, c.filename)
		assert.Equal(t, c.game, game)
		assert.Equal(t, payload, decoded)
	}
}

func TestRoundTripArchiveStability(t *testing.T) {
	filename := "turn-12.dat"
	payload := []byte("The quick brown fox jumps over the lazy dog")

	e1 := Encode(filename, gametag.GameA, payload)
	game1, decoded1, err := Decode(filename, e1)
	require.NoError(t, err)

	e2 := Encode(filename, game1, decoded1)
	game2, decoded2, err := Decode(filename, e2)
	require.NoError(t, err)

	assert.Equal(t, game1, game2)
	assert.Equal(t, decoded1, decoded2)
}

func TestDirectionDetectionWithoutReadingFurther(t *testing.T) {
	_, _, err := Decode("anything.bin", []byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEncoded))
}

func TestDecodeRejectsShortHeader(t *testing.T) {
	buf := make([]byte, 4)
	encoding.Put32(buf, 0, Magic)
	_, _, err := Decode("short.bin", buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHeader))
}

func TestDecodeRejectsUnknownGameTag(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encoding.Put32(buf, 0, Magic)
	encoding.Put32(buf, 4, 0xDEADBEEF)
	_, _, err := Decode("unknown.bin", buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHeader))
}

func TestDecodeRejectsWrongFilenameKeyMismatch(t *testing.T) {
	payload := []byte{0, 0, 0, 0}
	encoded := Encode("a.bin", gametag.GameA, payload)

	_, _, err := Decode("b.bin", encoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyMismatch))
}

func TestDecodeFlippedByteYieldsPayloadMismatch(t *testing.T) {
	filename := "archive.dat"
	payload := bytes.Repeat([]byte("hello world "), 50)
	encoded := Encode(filename, gametag.GameA, payload)

	require.Greater(t, len(encoded), HeaderSize+1)
	encoded[HeaderSize+1] ^= 0xFF

	assert.NotPanics(t, func() {
		_, _, err := Decode(filename, encoded)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPayloadMismatch))
	})
}

func TestHeaderFieldsMatchPayload(t *testing.T) {
	filename := "save.dat"
	payload := []byte("payload contents")
	encoded := Encode(filename, gametag.GameB, payload)

	header, err := ParseHeader(encoded)
	require.NoError(t, err)

	assert.Equal(t, Magic, header.Magic)
	assert.Equal(t, gametag.GameB, header.Game)
	assert.Equal(t, uint32(len(payload)), header.PayloadSize)
	assert.Equal(t, crc.Sum(payload), header.PayloadCRC)
}

func TestS1SaveFileUsesBaseKeyRegardlessOfFilename(t *testing.T) {
	payload := make([]byte, 32)
	e1 := Encode("test.sav", gametag.GameA, payload)
	e2 := Encode("different.sav", gametag.GameA, payload)

	h1, err := ParseHeader(e1)
	require.NoError(t, err)
	h2, err := ParseHeader(e2)
	require.NoError(t, err)

	assert.Equal(t, h1.KeyCRC, h2.KeyCRC)
}

func TestS3LongRunOfIdenticalBytesRoundTrips(t *testing.T) {
	payload := bytes.Repeat([]byte{'A'}, 1024)
	encoded := Encode("run.bin", gametag.GameA, payload)

	_, decoded, err := Decode("run.bin", encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestS4TextFollowedByRandomTailRoundTrips(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	tail := make([]byte, 1000)
	r.Read(tail)

	payload := append([]byte("The quick brown fox jumps over the lazy dog"), tail...)
	encoded := Encode("mixed.bin", gametag.GameB, payload)

	_, decoded, err := Decode("mixed.bin", encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

type captureLogger struct {
	messages []string
}

func (l *captureLogger) Debug(msg string, fields ...log.Field) { l.messages = append(l.messages, "debug:"+msg) }
func (l *captureLogger) Info(msg string, fields ...log.Field)  { l.messages = append(l.messages, "info:"+msg) }
func (l *captureLogger) Warn(msg string, fields ...log.Field)  { l.messages = append(l.messages, "warn:"+msg) }
func (l *captureLogger) Error(msg string, fields ...log.Field) { l.messages = append(l.messages, "error:"+msg) }

func TestWithLoggerTracesDecodeAndEncode(t *testing.T) {
	capture := &captureLogger{}
	payload := []byte("logged payload")
	encoded := Encode("logged.bin", gametag.GameA, payload, WithLogger(capture))
	require.NotEmpty(t, capture.messages)

	capture.messages = nil
	_, _, err := Decode("logged.bin", encoded, WithLogger(capture))
	require.NoError(t, err)
	assert.NotEmpty(t, capture.messages)
}

func TestWithoutLoggerOptionDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Encode("quiet.bin", gametag.GameA, []byte{1})
	})
}

func TestIsEncodedDoesNotRequireFullHeader(t *testing.T) {
	buf := make([]byte, 4)
	encoding.Put32(buf, 0, Magic)
	assert.True(t, IsEncoded(buf))
	assert.False(t, IsEncoded([]byte{0, 0, 0, 0}))
	assert.False(t, IsEncoded(nil))
}
