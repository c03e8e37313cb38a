package card

import (
	"net/url"
	"strings"
)

// firstTag returns the content of the first candidate key present in
// metadata with a usable value, scanning strictly in priority order. With
// requireURL set, a value only counts when its trimmed form parses as a
// URL; anything else is skipped and the scan continues. Absence after
// exhausting the candidates is normal control flow, reported via ok.
func firstTag(candidates []string, metadata map[string]string, requireURL bool) (string, bool) {
	for _, key := range candidates {
		content, found := metadata[key]
		if !found {
			continue
		}

		if requireURL {
			if !isParseableURL(content) {
				continue
			}

			return content, true
		}

		if content == "" {
			continue
		}

		return content, true
	}

	return "", false
}

// isParseableURL reports whether the trimmed string parses as a URL with a
// scheme and host. url.Parse on its own accepts nearly any string, so bare
// text and relative paths must be rejected here.
func isParseableURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}
