package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeUTF8 wraps r so its content reads as UTF-8. Retail POS exports
// are frequently Windows-1252 or UTF-16 rather than the UTF-8 the rest
// of the pipeline assumes.
//
// A BOM wins outright; otherwise content that already validates as UTF-8
// passes through untouched, chardet guesses legacy charsets, and
// Windows-1252 is the last resort.
func DecodeUTF8(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(2048)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek input: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(head, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case bytes.HasPrefix(head, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if best, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if dec, ok := legacyDecoder(best.Charset); ok {
			return transform.NewReader(br, dec), nil
		}

		if best.Charset == "UTF-8" {
			return br, nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// legacyDecoder maps a chardet charset name to a decoder for the legacy
// encodings seen in real shop exports.
func legacyDecoder(charset string) (transform.Transformer, bool) {
	switch charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder(), true
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder(), true
	default:
		return nil, false
	}
}
