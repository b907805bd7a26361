package scanner

import (
	"regexp"
	"time"
)

var (
	instantPrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:\d{2})`)
	datePrefixRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// Times supplies the fallback timestamps for a candidate's content file.
type Times interface {
	BirthTime(rel string) (time.Time, error)
	ModTime(rel string) (time.Time, error)
}

// datePrefix reports the RFC 3339 instant encoded at the start of name, if
// any, together with the number of bytes it spans. A date-only prefix counts
// only when followed by a non-digit boundary (end of name included) and
// yields midnight UTC. Calendar-invalid prefixes such as 2021-13-40 do not
// count.
func datePrefix(name string) (time.Time, int, bool) {
	if m := instantPrefixRe.FindString(name); m != "" {
		if t, err := time.Parse(time.RFC3339, m); err == nil {
			return t, len(m), true
		}
	}
	m := datePrefixRe.FindString(name)
	if m == "" {
		return time.Time{}, 0, false
	}
	if rest := name[len(m):]; rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return time.Time{}, 0, false
	}
	t, err := time.Parse("2006-01-02", m)
	if err != nil {
		return time.Time{}, 0, false
	}
	return t.UTC(), len(m), true
}

// ResolveDate determines the publication instant for an article. An RFC 3339
// prefix on name (the filename for flat categories, the article directory
// name for tree categories) always wins; otherwise the content file's
// creation time applies, or its modification time when useMtime is set.
// Malformed date-like prefixes are never an error, they simply fall through
// to the timestamp.
func ResolveDate(name, contentPath string, times Times, useMtime bool) (time.Time, error) {
	if t, _, ok := datePrefix(name); ok {
		return t, nil
	}
	if useMtime {
		return times.ModTime(contentPath)
	}
	return times.BirthTime(contentPath)
}
