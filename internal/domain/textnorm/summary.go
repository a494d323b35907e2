package textnorm

import (
	"regexp"
	"strings"

	"github.com/okian/gamepulse/internal/domain/model"
)

// Limits for summary assembly.
const (
	summaryScanChars   = 2000
	summaryMinSentence = 15
	summaryMaxSentence = 300
	summaryTargetLen   = 250
	summaryHardCap     = 280
	summaryMaxParts    = 3
)

var summaryBoilerplate = regexp.MustCompile(`(?i)\b(?:click here|subscribe|follow us|join our|discord|wishlist|` +
	`add to your|steam store|coming to|available on|check out our|` +
	`stay tuned|see you|thank you for|please note|note:)\b`)

// Summary extracts a readable 2-3 sentence summary from a news item,
// skipping boilerplate and sentences that merely repeat the title.
func Summary(item model.NewsItem) string {
	if item.Contents == "" {
		return ""
	}
	contents := Normalize(item.Contents)
	sentences := Sentences(Truncate(contents, summaryScanChars))

	titlePrefix := strings.ToLower(strings.TrimSpace(item.Title))
	titlePrefix = Truncate(titlePrefix, 30)

	var good []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(s) < summaryMinSentence || len(s) > summaryMaxSentence {
			continue
		}
		if summaryBoilerplate.MatchString(s) {
			continue
		}
		if titlePrefix != "" && strings.HasPrefix(strings.ToLower(s), titlePrefix) {
			continue
		}
		good = append(good, s)
		if len(good) == summaryMaxParts {
			break
		}
	}

	var parts []string
	total := 0
	for _, s := range good {
		if total+len(s) > summaryTargetLen && len(parts) > 0 {
			break
		}
		parts = append(parts, s)
		total += len(s)
	}

	return Ellipsize(strings.Join(parts, " "), summaryHardCap)
}
