package commit

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

//go:embed info.txt
var embeddedInfo []byte

// Info returns the conventional commits help document verbatim.
//
// With an empty path the document embedded at build time is returned.
// Otherwise the file at path is read and decoded using the named encoding
// ("utf-8" when empty). Read or decode failures are hard errors; nothing
// else depends on this document, so there is no fallback.
func Info(path, encodingName string) (string, error) {
	if path == "" {
		return string(embeddedInfo), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read info document: %w", err)
	}

	if encodingName == "" {
		encodingName = "utf-8"
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", encodingName, err)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode info document as %s: %w", encodingName, err)
	}

	return strings.ToValidUTF8(string(decoded), ""), nil
}
