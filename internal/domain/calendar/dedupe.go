package calendar

import (
	"regexp"
	"sort"
	"strings"

	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/textnorm"
)

// Version digits and their separators ("5", "5.2") are noise for grouping.
var digitsRE = regexp.MustCompile(`[\d.]+`)

// dedupKeyChars bounds the normalized description prefix. "Season 5
// launches" and "Season 5.2 launches" collapse to the same key because the
// digits are stripped first.
const dedupKeyChars = 30

// dedupKey groups entries that describe the same event.
func dedupKey(e model.CalendarEntry) string {
	norm := digitsRE.ReplaceAllString(strings.ToLower(e.Desc), "")
	norm = strings.TrimSpace(textnorm.Truncate(norm, dedupKeyChars))
	return e.Game + "\x00" + norm
}

// deduplicate keeps one entry per key: the one with the lowest importance
// number. Ties within equal importance prefer an entry with a URL, then the
// earliest resolvable date, then source order.
func deduplicate(entries []model.CalendarEntry) []model.CalendarEntry {
	sorted := make([]model.CalendarEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Importance != b.Importance {
			return a.Importance < b.Importance
		}
		if (a.URL != "") != (b.URL != "") {
			return a.URL != ""
		}
		switch {
		case a.Date != nil && b.Date != nil && !a.Date.Equal(*b.Date):
			return a.Date.Before(*b.Date)
		case a.Date != nil && b.Date == nil:
			return true
		default:
			return false
		}
	})

	seen := map[string]bool{}
	var out []model.CalendarEntry
	for _, e := range sorted {
		key := dedupKey(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
