package cloudflare

import (
	"io"
	"strings"
)

//nolint:gochecknoglobals
var newLineRemover = strings.NewReplacer("\n", "", "\r", "")

// toSingleLine removes line breaks from s and
// collapses runs of spaces into a single space.
func toSingleLine(s string) (line string) {
	line = newLineRemover.Replace(s)
	for strings.Contains(line, "  ") {
		line = strings.ReplaceAll(line, "  ", " ")
	}
	return line
}

func bodyToSingleLine(body io.Reader) (s string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	return toSingleLine(string(b))
}
