package storage

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSafeNameLen = 128

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename reduces an untrusted client file name to ASCII letters, digits, '.', '_' and '-'.
// Path separators become word breaks, so "../../etc/passwd" turns into "etc_passwd".
// The result never contains a separator and never starts with a dot; an empty result becomes "upload".
func SanitizeFilename(name string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	s, _, err := transform.String(t, name)
	if err != nil {
		s = name
	}

	s = strings.NewReplacer("/", " ", "\\", " ").Replace(s)
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeNameChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "._")

	if len(s) > maxSafeNameLen {
		ext := filepath.Ext(s)
		if len(ext) >= maxSafeNameLen {
			ext = ""
		}
		s = strings.TrimLeft(strings.Trim(s[:maxSafeNameLen-len(ext)], "._")+ext, "._")
	}
	if s == "" {
		return "upload"
	}
	return s
}
