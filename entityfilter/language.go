package entityfilter

import "strings"

// Language is a set of lowercase language tags plus an exact-match mode,
// as used to filter labels, descriptions, aliases, and monolingual claim
// values.
//
// A zero-value Language (no tags configured) matches every tag: the
// language filter is simply inactive until tags are supplied.
type Language struct {
	tags  map[string]struct{}
	exact bool
}

// NewLanguage builds a [Language] from a list of tags, normalized to
// lowercase. exact disables prefix matching: when true, a tag must appear
// verbatim in tags; when false, the prefix of the tag up to the first '-'
// is also checked (so "de" admits "de-ch").
func NewLanguage(tags []string, exact bool) Language {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = struct{}{}
	}

	return Language{tags: set, exact: exact}
}

// Enabled reports whether any language tags were configured. When false,
// [Language.Match] always returns true.
func (l Language) Enabled() bool {
	return len(l.tags) > 0
}

// Match reports whether tag matches the configured language set.
func (l Language) Match(tag string) bool {
	if len(l.tags) == 0 {
		return true
	}

	tag = strings.ToLower(tag)

	if l.exact {
		_, ok := l.tags[tag]

		return ok
	}

	prefix := tag
	if idx := strings.IndexByte(tag, '-'); idx >= 0 {
		prefix = tag[:idx]
	}

	_, ok := l.tags[prefix]

	return ok
}
