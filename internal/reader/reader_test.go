package reader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctrlflow-yaml/yamlevents/internal/reader"
	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

func decodeBytes(t *testing.T, b []byte) ([]byte, token.Encoding, error) {
	t.Helper()
	return reader.DecodeBytes(b, token.AnyEncoding)
}

func TestDecodeUTF8NoBOM(t *testing.T) {
	buf, enc, err := decodeBytes(t, []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, token.UTF8Encoding, enc)
	require.Equal(t, "hello\x00", string(buf))
}

func TestDecodeUTF8BOM(t *testing.T) {
	buf, enc, err := decodeBytes(t, append([]byte{0xEF, 0xBB, 0xBF}, "hi"...))
	require.NoError(t, err)
	require.Equal(t, token.UTF8Encoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF16LE(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF16LEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF32LE(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 0x00, 0x00, 'h', 0, 0, 0, 'i', 0, 0, 0}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF32LEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF32BE(t *testing.T) {
	raw := []byte{0x00, 0x00, 0xFE, 0xFF, 0, 0, 0, 'h', 0, 0, 0, 'i'}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF32BEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF16LENoBOM(t *testing.T) {
	raw := []byte{'h', 0, 'i', 0}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF16LEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF16BENoBOM(t *testing.T) {
	raw := []byte{0, 'h', 0, 'i'}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF16BEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF32LENoBOM(t *testing.T) {
	raw := []byte{'h', 0, 0, 0, 'i', 0, 0, 0}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF32LEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeUTF32BENoBOM(t *testing.T) {
	raw := []byte{0, 0, 0, 'h', 0, 0, 0, 'i'}
	buf, enc, err := decodeBytes(t, raw)
	require.NoError(t, err)
	require.Equal(t, token.UTF32BEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeExplicitEncodingSkipsAutodetection(t *testing.T) {
	// Fed as raw UTF-16LE bytes with no BOM and an explicit Encoding: the
	// bytes are decoded under that Encoding, which is reported back as given.
	raw := []byte{'h', 0, 'i', 0}
	buf, enc, err := reader.DecodeBytes(raw, token.UTF16LEEncoding)
	require.NoError(t, err)
	require.Equal(t, token.UTF16LEEncoding, enc)
	require.Equal(t, "hi\x00", string(buf))
}

func TestDecodeInputError(t *testing.T) {
	_, _, err := reader.Decode(errReader{}, token.AnyEncoding)
	require.Error(t, err)
	require.Contains(t, err.Error(), "input error")
}

func TestDecodeControlCharacterRejected(t *testing.T) {
	_, _, err := decodeBytes(t, []byte{0x01})
	require.Error(t, err)
	require.Contains(t, err.Error(), "control characters are not allowed")
	var yerr *token.Error
	require.ErrorAs(t, err, &yerr)
	require.Equal(t, token.InvalidEncoding, yerr.Code)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }
