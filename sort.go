package shelf

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey orders titles numerically by their leading digits, then
// case-insensitively. Titles without a numeric prefix sort after all
// numbered ones.
type SortKey struct {
	// Digits holds the leading decimal digits with leading zeros trimmed.
	// Empty when the title has no numeric prefix (or the prefix is all zeros,
	// see HasPrefix).
	Digits    string
	HasPrefix bool
	Lower     string
	Raw       string
}

// SortKeyOf computes the sort key for a title.
func SortKeyOf(title string) SortKey {
	n := 0
	for n < len(title) && title[n] >= '0' && title[n] <= '9' {
		n++
	}
	return SortKey{
		Digits:    strings.TrimLeft(title[:n], "0"),
		HasPrefix: n > 0,
		Lower:     strings.ToLower(title),
		Raw:       title,
	}
}

// Compare returns -1, 0 or +1. Only identical titles compare equal.
func (k SortKey) Compare(other SortKey) int {
	switch {
	case k.HasPrefix && !other.HasPrefix:
		return -1
	case !k.HasPrefix && other.HasPrefix:
		return 1
	case k.HasPrefix:
		// Compare as integers without parsing: longer digit strings are larger.
		if c := cmp.Compare(len(k.Digits), len(other.Digits)); c != 0 {
			return c
		}
		if c := strings.Compare(k.Digits, other.Digits); c != 0 {
			return c
		}
	}
	if c := strings.Compare(k.Lower, other.Lower); c != 0 {
		return c
	}
	return strings.Compare(k.Raw, other.Raw)
}

// CompareTitles compares two titles by their sort keys.
func CompareTitles(a, b string) int {
	return SortKeyOf(a).Compare(SortKeyOf(b))
}

// SortTitles sorts titles in place.
func SortTitles(titles []string) {
	slices.SortFunc(titles, CompareTitles)
}

// SortFiles sorts files in place by title.
func SortFiles(files []*File) {
	slices.SortStableFunc(files, func(a, b *File) int {
		return CompareTitles(a.Title, b.Title)
	})
}
