package calendar

import (
	"fmt"
	"regexp"
	"time"
)

// Month-name + day, optional year, optional ordinal suffix, optionally led
// by a scheduling verb ("begins March 3rd", "available on Sep 12, 2026").
var futureDateRE = regexp.MustCompile(`(?i)(?:(?:on|from|begins?|launches?|starting|available)\s+)?` +
	`((?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
	`jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)` +
	`\s+\d{1,2}(?:st|nd|rd|th)?(?:\s*,?\s*\d{4})?)`)

var ordinalSuffixRE = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)`)

var withYearLayouts = []string{"January 2, 2006", "January 2 2006", "Jan 2, 2006", "Jan 2 2006"}
var noYearLayouts = []string{"January 2", "Jan 2"}

// dateRef is one date mention found in free text.
type dateRef struct {
	raw string
	t   time.Time
}

// minedDates extracts every parseable date mention from text. A year-less
// mention is pinned to currentYear. Unparseable candidates are skipped
// silently; one bad mention never aborts the scan.
func minedDates(text string, currentYear int) []dateRef {
	var out []dateRef
	for _, m := range futureDateRE.FindAllStringSubmatch(text, -1) {
		raw := m[1]
		cleaned := ordinalSuffixRE.ReplaceAllString(raw, "$1")

		parsed := false
		for _, layout := range withYearLayouts {
			if t, err := time.Parse(layout, cleaned); err == nil {
				out = append(out, dateRef{raw: raw, t: t})
				parsed = true
				break
			}
		}
		if parsed {
			continue
		}
		for _, layout := range noYearLayouts {
			if t, err := time.Parse(fmt.Sprintf("%s 2006", layout), fmt.Sprintf("%s %d", cleaned, currentYear)); err == nil {
				out = append(out, dateRef{raw: raw, t: t})
				break
			}
		}
	}
	return out
}

// publicationDate parses a scraped news date like "Feb 12" against the
// current year. Returns nil when it cannot be resolved.
func publicationDate(dateStr string, currentYear int) *time.Time {
	if dateStr == "" {
		return nil
	}
	if t, err := time.Parse("Jan 2 2006", fmt.Sprintf("%s %d", dateStr, currentYear)); err == nil {
		return &t
	}
	return nil
}
