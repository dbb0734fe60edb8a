package markdown

import (
	"regexp"
	"strings"
)

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern  = regexp.MustCompile("`[^`]*`")
	linkPattern        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	imagePattern       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	headingPattern     = regexp.MustCompile(`(?m)^#+\s*`)
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	boldAltPattern     = regexp.MustCompile(`__([^_]+)__`)
	italicAltPattern   = regexp.MustCompile(`_([^_]+)_`)

	wordPattern = regexp.MustCompile(`\b[a-z]+\b`)
)

// ExtractText strips markdown syntax from content, returning the prose that
// remains. Code blocks and inline code are removed entirely so their contents
// never reach the spelling detector.
func ExtractText(content string) string {
	content = fencedBlockPattern.ReplaceAllString(content, "")
	content = inlineCodePattern.ReplaceAllString(content, "")

	content = linkPattern.ReplaceAllString(content, "$1")
	content = imagePattern.ReplaceAllString(content, "$1")

	content = headingPattern.ReplaceAllString(content, "")
	content = boldPattern.ReplaceAllString(content, "$1")
	content = italicPattern.ReplaceAllString(content, "$1")
	content = boldAltPattern.ReplaceAllString(content, "$1")
	content = italicAltPattern.ReplaceAllString(content, "$1")

	return content
}

// Words tokenizes text into lowercase alphabetic words in order of
// appearance.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// UniqueWords returns the words of text deduplicated, preserving first
// appearance order so findings report deterministically.
func UniqueWords(text string) []string {
	words := Words(text)
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		unique = append(unique, word)
	}
	return unique
}
