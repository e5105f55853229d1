package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	enc "github.com/shopsaathi/saathi/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := enc.DecodeUTF8(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestDecodeUTF8_PlainUTF8(t *testing.T) {
	assert.Equal(t, "date,product\n2024-01-01,Chá\n", decode(t, []byte("date,product\n2024-01-01,Chá\n")))
}

func TestDecodeUTF8_StripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("date,product")...)
	assert.Equal(t, "date,product", decode(t, input))
}

func TestDecodeUTF8_UTF16LE(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	input, err := encoder.Bytes([]byte("date,product\n"))
	require.NoError(t, err)

	assert.Equal(t, "date,product\n", decode(t, input))
}

func TestDecodeUTF8_Windows1252(t *testing.T) {
	encoder := charmap.Windows1252.NewEncoder()

	input, err := encoder.Bytes([]byte("Café,Crème\n"))
	require.NoError(t, err)

	assert.Equal(t, "Café,Crème\n", decode(t, input))
}

func TestDecodeUTF8_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
