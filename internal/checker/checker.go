package checker

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"booklint/internal/grammar"
	"booklint/internal/logging"
	"booklint/internal/markdown"
	"booklint/internal/spelling"
)

// FileResult holds the findings for one markdown file. A file with neither
// spelling nor grammar issues is clean.
type FileResult struct {
	// Path is relative to the scan root.
	Path string
	// Title is a display name derived from the file name.
	Title    string
	Spelling []spelling.Issue
	Grammar  []grammar.Issue
}

// Clean reports whether the file produced no findings.
func (r FileResult) Clean() bool {
	return len(r.Spelling) == 0 && len(r.Grammar) == 0
}

// Summary aggregates counts across one scan.
type Summary struct {
	FilesChecked    int
	FilesWithIssues int
	SpellingErrors  int
	GrammarIssues   int
}

// Result is the outcome of scanning a tree.
type Result struct {
	Files   []FileResult
	Summary Summary
}

// Checker scans markdown files under a root directory.
type Checker struct {
	root      string
	threshold int
	logger    *slog.Logger
}

// New returns a Checker scanning root with the given passive-voice threshold.
func New(root string, threshold int, logger *slog.Logger) *Checker {
	return &Checker{
		root:      root,
		threshold: threshold,
		logger:    logging.WithComponent(logger, "checker"),
	}
}

// Run discovers every *.md file under the root and checks each one. Files
// that cannot be read are logged as warnings, counted as checked, and
// reported clean.
func (c *Checker) Run() (Result, error) {
	paths, err := c.discover()
	if err != nil {
		return Result{}, err
	}

	result := Result{Files: make([]FileResult, 0, len(paths))}
	for _, path := range paths {
		file := c.checkFile(path)
		result.Files = append(result.Files, file)
		result.Summary.FilesChecked++
		if file.Clean() {
			continue
		}
		result.Summary.FilesWithIssues++
		result.Summary.SpellingErrors += len(file.Spelling)
		result.Summary.GrammarIssues += len(file.Grammar)
	}
	return result, nil
}

func (c *Checker) discover() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(c.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", c.root, err)
	}
	return paths, nil
}

func (c *Checker) checkFile(path string) FileResult {
	file := FileResult{
		Path:  c.displayPath(path),
		Title: documentTitle(path),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		// Skip unreadable files; they count as checked with zero issues.
		c.logger.Warn("skipping unreadable file", "path", path, "error", err)
		return file
	}

	content := string(raw)
	file.Spelling = spelling.Check(markdown.ExtractText(content))
	file.Grammar = grammar.Check(content, c.threshold)
	return file
}

func (c *Checker) displayPath(path string) string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return path
	}
	return rel
}
