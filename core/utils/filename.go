package utils

import (
	"regexp"
	"strings"
)

// timestampFilename matches names like "1700000000000.png" at the end of a URL or path.
var timestampFilename = regexp.MustCompile(`[0-9]+\.[A-Za-z]+$`)

// ExtractFilename returns the filename referenced by a URL or path.
// A trailing "<digits>.<letters>" token always wins; otherwise the last
// non-empty "/"-separated segment is returned. It never fails.
func ExtractFilename(urlOrPath string) string {
	if urlOrPath == "" {
		return ""
	}

	if match := timestampFilename.FindString(urlOrPath); match != "" {
		return match
	}

	segments := strings.Split(urlOrPath, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}
