package utils

import (
	"regexp"
	"strings"
	"time"
)

var ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// Layouts tried in order by ParseDate.
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
}

// RemoveOrdinalSuffix turns "1st" into "1", "22nd" into "22" and so on.
func RemoveOrdinalSuffix(s string) string {
	return ordinalSuffix.ReplaceAllString(s, "$1")
}

// ParseDate parses free-text dates such as "Sep 17th, 2021" or
// "March 3 2021". Input matching none of the known layouts yields the zero
// time, which sorts before every real date.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(RemoveOrdinalSuffix(s))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
