package titles

import (
	"regexp"
	"strconv"
	"strings"
)

// trailingYearPattern matches a title ending in a parenthesized 4-digit year,
// e.g. "Toy Story (1995)". Both anchors are required so embedded years inside
// a title are left alone.
var trailingYearPattern = regexp.MustCompile(`^(.*\S)\s+\((\d{4})\)$`)

// GenreSentinel is the placeholder the input feed uses when a record carries
// no genre tags. It never reaches the database.
const GenreSentinel = "(no genres listed)"

// Key is the canonical lookup key derived from a raw title field. Year is 0
// when the title carries no trailing year, which is a valid, common case.
type Key struct {
	Title string
	Year  int
}

// Parse extracts the canonical (title, year) pair from raw title text.
// Unparseable input is not an error: the whole trimmed text becomes the
// title and the year stays absent.
func Parse(raw string) Key {
	trimmed := strings.TrimSpace(raw)
	if match := trailingYearPattern.FindStringSubmatch(trimmed); match != nil {
		year, err := strconv.Atoi(match[2])
		if err == nil {
			return Key{Title: strings.TrimSpace(match[1]), Year: year}
		}
	}
	return Key{Title: trimmed}
}

// CacheKey returns the stable string representation used to address the
// lookup cache and deduplicate external requests: "title" without a year,
// "title::year" with one.
func (k Key) CacheKey() string {
	if k.Year > 0 {
		return k.Title + "::" + strconv.Itoa(k.Year)
	}
	return k.Title
}

// ParseRuntime converts an OMDb runtime string such as "142 min" to whole
// minutes. The second return reports success; values like "N/A", empty
// strings, or anything without the minute suffix yield (0, false) rather
// than an error so callers can map them to a null column.
func ParseRuntime(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasSuffix(trimmed, "min") {
		return 0, false
	}
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return 0, false
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes < 0 {
		return 0, false
	}
	return minutes, true
}

// SplitGenres normalizes a pipe-delimited genre field into a clean tag list.
// Empty segments and the no-genres sentinel are dropped.
func SplitGenres(raw string) []string {
	parts := strings.Split(raw, "|")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == GenreSentinel {
			continue
		}
		genres = append(genres, part)
	}
	return genres
}
