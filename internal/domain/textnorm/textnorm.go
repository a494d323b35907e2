// Package textnorm cleans scraped text before any other component reads it.
//
// Scraped news bodies arrive with HTML entities, BBCode-stripping artifacts
// (stray backslashes), glued sentences, and assorted invisible characters.
// Normalize is idempotent: applying it twice yields the same string.
package textnorm

import (
	"html"
	"regexp"
	"strings"
)

var (
	// Backslash runs left behind by markup stripping, e.g. `\Fixed` -> `Fixed`.
	// Matched at start of string or after whitespace, before a letter.
	backslashArtifact = regexp.MustCompile(`(^|\s)\\+([A-Za-z])`)

	// Sentence-ending punctuation glued to the next capitalized word,
	// e.g. "loot!The" -> "loot! The".
	gluedSentence = regexp.MustCompile(`([.!?])([A-Z])`)

	zeroWidth      = regexp.MustCompile("[\u200B\u200C\u200D\uFEFF]")
	spaceRun       = regexp.MustCompile(`[ \t]+`)
	blankLineRun   = regexp.MustCompile(`\n{3,}`)
	bulletReplacer = strings.NewReplacer("●", "", "•", "")
)

// Normalize decodes entities and fixes formatting artifacts. Empty input
// yields empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = backslashArtifact.ReplaceAllString(s, "$1$2")
	s = gluedSentence.ReplaceAllString(s, "$1 $2")
	s = bulletReplacer.Replace(s)
	s = zeroWidth.ReplaceAllString(s, "")
	s = spaceRun.ReplaceAllString(s, " ")
	s = blankLineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// sentenceBreak finds a sentence boundary: terminal punctuation, whitespace,
// then a capital letter. The capital belongs to the next sentence.
var sentenceBreak = regexp.MustCompile(`[.!?]\s+[A-Z]`)

// Sentences splits text on sentence boundaries without breaking version
// numbers like "1.2.1.0" (a digit after the dot is not a boundary).
func Sentences(text string) []string {
	var out []string
	start := 0
	for {
		loc := sentenceBreak.FindStringIndex(text[start:])
		if loc == nil {
			break
		}
		// Cut right after the punctuation character.
		end := start + loc[0] + 1
		out = append(out, text[start:end])
		// Resume at the capital letter, which is the last byte of the match.
		start = start + loc[1] - 1
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Ellipsize cuts s to at most n runes, appending "..." when it was cut.
func Ellipsize(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
