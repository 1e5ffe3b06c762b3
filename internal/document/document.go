// Package document reads planning documents from disk as UTF-8 text.
package document

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read returns the decoded contents of path. A leading byte order mark is
// consumed and invalid UTF-8 sequences are replaced with U+FFFD. The boolean
// is false, with a nil error, when the file does not exist; every other
// failure is returned.
func Read(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := Decode(data)
	if err != nil {
		return "", false, fmt.Errorf("decode %s: %w", path, err)
	}
	return text, true, nil
}

// Decode converts raw document bytes to a string, honouring a UTF-8 or UTF-16 BOM.
func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
