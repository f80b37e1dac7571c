package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// SniffImage detects the content type from the leading bytes of r and
// accepts raster images only. SVG is refused because it can embed scripts.
func SniffImage(r io.Reader) (string, error) {
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(m.String(), MimeImage) || m.Is(MimeSVG) {
		return m.String(), fmt.Errorf("tipo de arquivo não permitido: %s", m.String())
	}
	return m.String(), nil
}

// HasAllowedExtension reports whether filename ends with one of exts,
// ignoring case.
func HasAllowedExtension(filename string, exts []string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
