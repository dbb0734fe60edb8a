// Package grammar scans raw markdown for a fixed set of usage heuristics.
//
// Unlike the spelling detector, grammar rules run against the original file
// content so that suggestions can quote the text as written, markup included.
// The rules are crude regular expressions; they trade precision for zero
// infrastructure and are expected to produce occasional false positives.
package grammar

import (
	"fmt"
	"regexp"
)

// Issue describes one grammar finding.
type Issue struct {
	Text        string
	Suggestion  string
	Explanation string
}

// Rule pairs a pattern with the suggested rewrite and the reason behind it.
type Rule struct {
	Pattern     *regexp.Regexp
	Suggestion  string
	Explanation string
}

// DefaultPassiveVoiceThreshold is the passive-voice match count above which a
// single aggregate finding is emitted for a document.
const DefaultPassiveVoiceThreshold = 20

// rules are evaluated in order against the raw document content.
var rules = []Rule{
	{regexp.MustCompile(`(?i)\bit's own\b`), "its own", "Possessive 'its' doesn't use an apostrophe"},
	{regexp.MustCompile(`(?i)\balot\b`), "a lot", "Should be two words"},
	{regexp.MustCompile(`(?i)\bloose\b.*\b(something|it|them)\b`), "lose", "Use 'lose' not 'loose' for the verb"},
	{regexp.MustCompile(`(?i)\bthen\b.*\b(better|more|less)\b`), "than", "Use 'than' for comparisons"},
}

// passivePattern matches an auxiliary verb immediately followed by an
// "-ed"-shaped word, a rough stand-in for passive constructions.
var passivePattern = regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+\w*ed\b`)

// Check runs every rule against content and appends the passive-voice
// density finding when the match count exceeds threshold. Rules share no
// state; each contributes one issue per match, in rule order.
func Check(content string, threshold int) []Issue {
	var issues []Issue
	for _, rule := range rules {
		for _, match := range rule.Pattern.FindAllString(content, -1) {
			issues = append(issues, Issue{
				Text:        match,
				Suggestion:  rule.Suggestion,
				Explanation: rule.Explanation,
			})
		}
	}

	if count := len(passivePattern.FindAllString(content, -1)); count > threshold {
		issues = append(issues, Issue{
			Text:        "High passive voice",
			Suggestion:  fmt.Sprintf("%d instances", count),
			Explanation: "Consider using more active voice",
		})
	}

	return issues
}
