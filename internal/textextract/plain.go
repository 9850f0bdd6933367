package textextract

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var errUndecodable = errors.New("text is not valid utf-8, windows-1251 or windows-1252")

// fallbackEncodings are tried in order once UTF-8 decoding fails.
var fallbackEncodings = []encoding.Encoding{
	charmap.Windows1251,
	charmap.Windows1252,
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}

// decodeText decodes UTF-8 first, then the 8-bit fallbacks. A fallback that
// produces the replacement character is considered a failed decoding.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	for _, enc := range fallbackEncodings {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		text := string(decoded)
		if strings.ContainsRune(text, utf8.RuneError) {
			continue
		}
		return text, nil
	}

	return "", errUndecodable
}
