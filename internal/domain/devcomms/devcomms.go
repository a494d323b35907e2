// Package devcomms mines structured facts from official developer news.
//
// Every extraction is best-effort: a capture that fails degrades to a
// generic label ("new map" with no name) rather than erroring, and one
// malformed item never aborts the scan of the rest.
package devcomms

import (
	"regexp"
	"strings"

	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/textnorm"
)

// Scan windows, in runes. Long news bodies are sampled, not read whole.
const (
	combinedScanChars = 2000
	captureScanChars  = 1500
	mapNameScanChars  = 500
	upcomingDedupKey  = 40
	maxUpcomingParts  = 2
	maxCaptureItems   = 3
	detailMaxLen      = 180
)

// Topic patterns over the lowercased title+contents sample.
var (
	seasonRE  = regexp.MustCompile(`\bseason\s*[\d.]+|new season|season \w+ begins|season launch`)
	newMapRE  = regexp.MustCompile(`\bnew map|introducing.*map|map rework|new arena`)
	balanceRE = regexp.MustCompile(`\bbalance|nerf|buff|tuning|adjusted|designer.?s?\s*notes`)
	contentRE = regexp.MustCompile(`\bnew (?:weapon|hero|operator|character|agent|legend|mode|gadget|vehicle|` +
		`specialist|ability|item)\b`)
	introducingRE = regexp.MustCompile(`\bintroducing\b`)
	bugFixRE      = regexp.MustCompile(`\b(?:bug\s*)?fix|hotfix|resolved|addressed|patched|stability`)
	fixCountRE    = regexp.MustCompile(`\bfix(?:ed|es)?\b`)

	// Forward-looking language anchored on a concrete date ("begins March 3")
	// or a stock phrase ("coming soon").
	upcomingDateRE = regexp.MustCompile(`(?:begins?|starts?|launches?|arriving|coming)\s+` +
		`(?:on\s+)?(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{1,2}|\d{1,2}/\d{1,2})`)
	upcomingSoonRE = regexp.MustCompile(`\bcoming soon|next (?:week|month|update)|early access|beta|preview|now live|now available`)
)

// Capture patterns over the original-case text. Proper-noun style names
// only, never full sentences.
var (
	seasonNameRE  = regexp.MustCompile(`[Ss]eason\s*[\d.]+(?:\s*[:\-–]\s*([A-Z][A-Za-z\s&]+))?`)
	mapNameRE     = regexp.MustCompile(`(?:new map|map)\s*[:\-–]?\s*([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,2})`)
	balanceItemRE = regexp.MustCompile(`(\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:has been|was|is)\s+` +
		`(?:buff|nerf|adjust|tuned|changed)`)
	contentNameRE = regexp.MustCompile(`(?:introducing|new (?:hero|operator|weapon|map|mode|character|legend|agent))` +
		`\s*[:\-–]?\s*([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,3})`)
)

// Sentence filters for upcoming-detail extraction.
var (
	futureVerbRE = regexp.MustCompile(`(?i)\b(?:will|introduces?|begins?|arriving|coming|launches?|featuring|` +
		`includes?|brings?|adds?|starting|now live|now available)\b`)
	detailNoiseRE   = regexp.MustCompile(`(?i)click|subscribe|follow us|join|discord`)
	fallbackNoiseRE = regexp.MustCompile(`(?i)click|subscribe|follow us|join|discord|welcome to`)
)

// Extract scans a title's news feed for developer communication signals.
func Extract(news []model.NewsItem) model.DevCommsSummary {
	var out model.DevCommsSummary
	if len(news) == 0 {
		return out
	}

	var contentParts []string
	var upcoming []model.NewsItem

	for _, item := range news {
		title := strings.ToLower(item.Title)
		contents := strings.ToLower(item.Contents)
		combined := title + " " + textnorm.Truncate(contents, combinedScanChars)

		if seasonRE.MatchString(combined) {
			out.HasNewSeason = true
			if m := seasonNameRE.FindString(item.Title); m != "" {
				out.SeasonName = strings.TrimSpace(m)
			}
		}

		if newMapRE.MatchString(combined) {
			out.HasNewMap = true
			head := textnorm.Truncate(item.Contents, mapNameScanChars)
			if m := mapNameRE.FindStringSubmatch(head); m != nil {
				contentParts = append(contentParts, "new map "+strings.TrimSpace(m[1]))
			} else {
				contentParts = append(contentParts, "new map")
			}
		}

		if balanceRE.MatchString(combined) {
			out.HasBalanceChanges = true
			head := textnorm.Truncate(item.Contents, captureScanChars)
			if targets := submatches(balanceItemRE, head, maxCaptureItems); len(targets) > 0 {
				out.BalanceDetails = strings.Join(targets, ", ")
			}
		}

		if contentRE.MatchString(combined) || introducingRE.MatchString(combined) {
			out.HasNewContent = true
			head := textnorm.Truncate(item.Contents, captureScanChars)
			if names := submatches(contentNameRE, head, maxCaptureItems); len(names) > 0 {
				out.NewContentDetails = strings.Join(names, ", ")
			}
		}

		if bugFixRE.MatchString(combined) {
			out.HasBugFixes = true
			if n := len(fixCountRE.FindAllString(contents, -1)); n > out.BugFixCount {
				out.BugFixCount = n
			}
		}

		matched := false
		if upcomingDateRE.MatchString(combined) {
			out.HasUpcomingEvent = true
			upcoming = append(upcoming, item)
			matched = true
		}
		if !matched && upcomingSoonRE.MatchString(combined) {
			out.HasUpcomingEvent = true
			upcoming = append(upcoming, item)
		}
	}

	if len(upcoming) > 0 {
		var details []string
		seen := map[string]bool{}
		for _, item := range upcoming {
			key := strings.ToLower(textnorm.Truncate(item.Title, upcomingDedupKey))
			if seen[key] {
				continue
			}
			seen[key] = true
			details = append(details, upcomingDetail(item))
		}
		if len(details) > maxUpcomingParts {
			details = details[:maxUpcomingParts]
		}
		out.UpcomingDetails = strings.Join(details, " | ")
	}

	var summaryParts []string
	if out.SeasonName != "" {
		summaryParts = append(summaryParts, out.SeasonName)
	}
	summaryParts = append(summaryParts, contentParts...)
	if out.NewContentDetails != "" {
		summaryParts = append(summaryParts, out.NewContentDetails)
	}
	out.ContentSummary = strings.Join(dedupe(summaryParts), ", ")

	return out
}

// upcomingDetail finds 1-2 sentences describing what is actually coming,
// rather than echoing the article title.
func upcomingDetail(item model.NewsItem) string {
	titled := item.Title
	if item.Date != "" {
		titled = item.Title + " (" + item.Date + ")"
	}
	if item.Contents == "" {
		return titled
	}

	sentences := textnorm.Sentences(textnorm.Truncate(item.Contents, captureScanChars))

	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(s) < 20 || len(s) > 300 {
			continue
		}
		if futureVerbRE.MatchString(s) && !detailNoiseRE.MatchString(s) {
			return textnorm.Ellipsize(s, detailMaxLen)
		}
	}

	// No forward-looking sentence: fall back to the first substantial one.
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(s) > 20 && len(s) < 250 && !fallbackNoiseRE.MatchString(s) {
			return textnorm.Ellipsize(s, detailMaxLen)
		}
	}

	return titled
}

// submatches returns the first capture group of up to max matches, trimmed.
func submatches(re *regexp.Regexp, s string, max int) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, strings.TrimSpace(m[1]))
		if len(out) == max {
			break
		}
	}
	return out
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(parts []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range parts {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
