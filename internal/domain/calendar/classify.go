package calendar

import (
	"regexp"
	"strings"

	"github.com/okian/gamepulse/internal/domain/model"
)

// Tier-3 noise: cosmetic drops, localization, routine housekeeping. These
// never reach the calendar.
var tier3RE = regexp.MustCompile(`(?i)\b(?:localization|ban notice|bans notice|weekly bans|` +
	`mod minute|community hub|blog|newsletter|minor|` +
	`appearance|cosmetic|skin release|bundle|store|shop)\b`)

// Tier-1: season launches, roadmaps, expansions, new modes and operators.
var tier1RE = regexp.MustCompile(`(?i)\b(?:season\s+\d|new season|season launch|roadmap|road ahead|` +
	`expansion|new map|new hero|new agent|new legend|new operator|` +
	`new mode|launch|release|early access|open beta|year \d|` +
	`expedition|major update|anniversary|championship)\b`)

var genericUpdateRE = regexp.MustCompile(`(?i)^\s*\S+\s+update\s*$`)

var patchNoteworthy = []string{"major", "season", "update", "new map", "new mode", "new hero", "new agent"}

// importance rates an event title into the three display tiers.
func importance(title string, isPatch bool) int {
	t := strings.ToLower(title)

	if tier3RE.MatchString(t) {
		return model.ImportanceSkip
	}
	if isPatch && !containsAny(t, patchNoteworthy) {
		// Generic patches without a noteworthy keyword are noise.
		if genericUpdateRE.MatchString(t) || strings.Contains(t, "hotfix") {
			return model.ImportanceSkip
		}
	}
	if tier1RE.MatchString(t) {
		return model.ImportanceMust
	}
	return model.ImportanceNice
}

// eventType classifies a news title into a calendar event type.
func eventType(title string, isPatch bool) string {
	t := strings.ToLower(title)
	switch {
	case isPatch || strings.Contains(t, "patch") || strings.Contains(t, "hotfix") || strings.Contains(t, "fix"):
		return model.EventPatch
	case strings.Contains(t, "season"):
		return model.EventSeason
	case strings.Contains(t, "event") || strings.Contains(t, "limited") ||
		strings.Contains(t, "ltm") || strings.Contains(t, "celebration"):
		return model.EventEvent
	case strings.Contains(t, "roadmap") || strings.Contains(t, "road ahead") || strings.Contains(t, "year"):
		return model.EventRoadmap
	default:
		return model.EventContent
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
