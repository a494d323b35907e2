// Package sentiment scores text polarity by keyword counting.
//
// This is a deterministic rule matcher, not a statistical model: the
// contract is reproducibility, not linguistic accuracy.
package sentiment

import (
	"regexp"

	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/textnorm"
)

// Polarity values returned by Classify.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
	Mixed    = "mixed" // aggregate-only: a title with no clear lean
)

// Default keyword tables, compiled once at startup. Whole-word matches,
// case-insensitive.
var (
	defaultPositive = regexp.MustCompile(`(?i)\b(?:love|amazing|best|great|excited|improve|improving|growing|launch|` +
		`new season|buff|returns|celebrates|incredible|perfect|beautiful|` +
		`gorgeous|masterpiece|appreciation|underrated|fantastic|excellent|` +
		`awesome|thriving|hype|hyped|praised|popular|record|surge|surging|` +
		`win|winning|won|victory|epic|stunning|brilliant|outstanding)\b`)

	defaultNegative = regexp.MustCompile(`(?i)\b(?:broken|nerf|nerfed|dead|worst|decline|declining|bug|bugs|issue|issues|` +
		`complaint|shut down|disappointed|removes|controversy|terrible|awful|garbage|` +
		`trash|unplayable|ruined|rant|frustrat|anger|angry|outrage|boycott|` +
		`dropping|crashed|exploit|cheat|hacked|pay.to.win|p2w|scam|predatory|` +
		`toxic|ban|banned|delay|delayed|cancel|cancelled|failing|failed|worse)\b`)
)

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithKeywords overrides the positive and negative keyword patterns.
func WithKeywords(positive, negative *regexp.Regexp) Option {
	return func(c *Classifier) {
		if positive != nil {
			c.positive = positive
		}
		if negative != nil {
			c.negative = negative
		}
	}
}

// Classifier counts keyword hits against fixed polarity tables.
type Classifier struct {
	positive *regexp.Regexp
	negative *regexp.Regexp
}

// New creates a Classifier with the default keyword tables.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		positive: defaultPositive,
		negative: defaultNegative,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the polarity of text. A tie with hits on both sides is
// neutral.
func (c *Classifier) Classify(text string) string {
	if text == "" {
		return Neutral
	}
	pos := len(c.positive.FindAllString(text, -1))
	neg := len(c.negative.FindAllString(text, -1))
	switch {
	case pos > neg && pos > 0:
		return Positive
	case neg > pos && neg > 0:
		return Negative
	default:
		return Neutral
	}
}

// Sample length for news contents in the aggregate pass.
const newsContentsSample = 200

// ForTitle aggregates sentiment across a title's news, press coverage, and
// community posts. The neutral middle is reported as "mixed" because a game
// week with equal signal on both sides is rarely truly neutral.
func (c *Classifier) ForTitle(t model.Title) string {
	var pos, neg int
	tally := func(s string) {
		switch c.Classify(s) {
		case Positive:
			pos++
		case Negative:
			neg++
		}
	}

	for _, n := range t.News {
		tally(n.Title + " " + textnorm.Truncate(n.Contents, newsContentsSample))
	}
	for _, a := range t.ExternalNews {
		tally(a.Title)
	}
	for _, p := range t.RedditWeek {
		tally(p.Title)
	}
	for _, p := range t.RedditMonth {
		tally(p.Title)
	}

	switch {
	case pos > neg && pos > 0:
		return Positive
	case neg > pos && neg > 0:
		return Negative
	default:
		return Mixed
	}
}
