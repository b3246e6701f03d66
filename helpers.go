package blogfront

import (
	"net/url"
	"path"
	"strings"
)

// SplitTags parses a comma-separated tag field into an ordered set of
// trimmed, non-empty strings. Order is preserved; duplicates are kept as
// typed, matching what the form round-trips.
func SplitTags(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// decodeBreaks reverses the backend's line-break encoding so the content
// textarea shows literal newlines.
func decodeBreaks(content string) string {
	return strings.ReplaceAll(content, "<br>", "\n")
}

// Slugify converts a name to a URL-safe lowercase slug. Used for uploaded
// image filenames; post slugs are assigned by the backend.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
