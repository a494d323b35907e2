// Package category assigns community posts to a fixed taxonomy.
//
// Classification is first-match-wins over an ordered rule list. The order is
// deliberate: operationally significant content (official news) beats
// emotional tone, and emotional tone beats recreational content. Within one
// rule, flair keywords are checked before title keywords.
package category

import (
	"strings"
	"unicode"
)

// Tags returned by Classify.
const (
	News       = "NEWS"
	Criticism  = "CRITICISM"
	Praise     = "PRAISE"
	Clip       = "CLIP"
	Creative   = "CREATIVE"
	Humor      = "HUMOR"
	Discussion = "DISCUSSION"
	Other      = "OTHER"
)

// rule is one (predicate, outcome) pair in the classification chain.
type rule struct {
	tag           string
	flairKeywords []string
	titleKeywords []string
	// extra runs after the keyword checks, on the lowercased title.
	extra func(title string) bool
}

// rules is evaluated top to bottom; the first hit wins. Keep this as data so
// the ordering stays auditable.
var rules = []rule{
	{
		tag:           News,
		flairKeywords: []string{"news", "announcement", "update", "patch", "dev", "official"},
		titleKeywords: []string{"patch notes", "dev update", "season ", "announced",
			"new season", "maintenance", "hotfix",
			"official", "update ", "release date", "roadmap"},
	},
	{
		tag: Criticism,
		titleKeywords: []string{"fix ", "broken", "worst", "rant", "complaint", "nerf ",
			"nerfed", "issue", "disappointed", "unplayable", "reminder:",
			"why can't", "why won't", "please fix", "stop ", "ruined",
			"terrible", "awful", "garbage", "trash ", "dead game"},
	},
	{
		tag: Praise,
		titleKeywords: []string{"love ", "amazing", "best ", "incredible", "perfect",
			"thank", "appreciation", "shoutout", "underrated",
			"beautiful", "gorgeous", "masterpiece"},
	},
	{
		tag:           Clip,
		flairKeywords: []string{"clip", "highlight", "gameplay", "play of the game"},
		titleKeywords: []string{"ace", "clutch", "insane clip", "hip fire", "headshot",
			"1v5", "1v4", "1v3", "my best", "watch this",
			"check this", "no scope", "collateral"},
	},
	{
		tag:           Creative,
		flairKeywords: []string{"art", "creative", "cosplay", "fan"},
		titleKeywords: []string{"cosplay", "fan art", "fanart", "animation",
			"3d print", "drawing", "painted", "i made",
			"sculpture", "tattoo"},
	},
	{
		tag:           Humor,
		flairKeywords: []string{"meme", "humor", "funny", "fluff", "satire"},
		titleKeywords: []string{"lmao", "lol ", "bruh", "meme", "shitpost",
			"did a 14", "literally ", "bro "},
	},
	{
		tag:           Discussion,
		flairKeywords: []string{"discussion", "question", "help", "advice", "guide"},
		extra: func(title string) bool {
			return strings.HasSuffix(strings.TrimRightFunc(title, unicode.IsSpace), "?") ||
				strings.HasPrefix(title, "what ") ||
				strings.HasPrefix(title, "how ")
		},
	},
}

// Classify returns the tag for a post given its title and flair.
func Classify(title, flair string) string {
	t := strings.ToLower(title)
	f := strings.ToLower(flair)

	for _, r := range rules {
		if containsAny(f, r.flairKeywords) {
			return r.tag
		}
		if containsAny(t, r.titleKeywords) {
			return r.tag
		}
		if r.extra != nil && r.extra(t) {
			return r.tag
		}
	}
	return Other
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
