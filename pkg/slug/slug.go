package slug

import (
	"regexp"
	"strings"
)

const shortIDLen = 8

var nonAlnum = regexp.MustCompile("[^a-z0-9]+")

// Make derives the URL path segment for a clinic from its display name and
// external place ID. The slug is a view, not an identity: it is recomputed on
// every render and never stored. Two clinics with the same name and an
// identical 8-character place ID prefix produce the same slug; callers that
// need strict uniqueness must keep the full place ID.
func Make(name, placeID string) string {
	cleaned := strings.ToLower(name)
	cleaned = nonAlnum.ReplaceAllString(cleaned, "-")
	cleaned = strings.Trim(cleaned, "-")

	short := placeID
	if len(short) > shortIDLen {
		short = short[:shortIDLen]
	}
	return cleaned + "-" + short
}

// ShortID extracts the truncated place ID from a slug: the segment after the
// last '-'. A slug without '-' (name emptied out by cleaning) is returned
// whole; it is still a valid prefix to resolve against.
func ShortID(s string) string {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		return s[i+1:]
	}
	return s
}
