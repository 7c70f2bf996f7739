package csvio

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeBytes converts raw input bytes to UTF-8. With name empty the
// encoding is picked from the BOM, falling back to UTF-8 validity and then
// Latin-1; a non-empty name forces that encoding. The returned string names
// the encoding actually used.
func DecodeBytes(data []byte, name string) ([]byte, string, error) {
	if name != "" {
		dec, err := decoderFor(name)
		if err != nil {
			return nil, "", err
		}
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, "", fmt.Errorf("decode %s input: %w", name, err)
		}
		return bytes.TrimPrefix(out, bomUTF8), name, nil
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], "utf-8", nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, "", fmt.Errorf("decode UTF-16 input: %w", err)
		}
		return out, "utf-16", nil
	case utf8.Valid(data):
		return data, "utf-8", nil
	default:
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, "", fmt.Errorf("decode Latin-1 input: %w", err)
		}
		return out, "latin-1", nil
	}
}

func decoderFor(name string) (transform.Transformer, error) {
	var enc encoding.Encoding
	switch name {
	case "utf-8", "utf8", "utf-8-sig":
		enc = unicode.UTF8
	case "utf-16", "utf16":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf-16le":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "latin-1", "iso-8859-1":
		enc = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc.NewDecoder(), nil
}
