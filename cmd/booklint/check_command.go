package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"booklint/internal/checker"
	"booklint/internal/config"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [root]",
		Short: "Spell and grammar check every markdown file under a directory",
		Long: `Recursively scans for *.md files and reports spelling issues from a fixed
misspelling table plus heuristic grammar findings. With no argument the
configured root is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root := cfg.Checker.Root
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve scan root: %w", err)
				}
				root = expanded
			}

			logger := ctx.logger(cmd.ErrOrStderr())
			logger.Debug("scanning markdown tree", "root", root)

			result, err := checker.New(root, cfg.Checker.PassiveVoiceThreshold, logger).Run()
			if err != nil {
				return err
			}

			renderCheckReport(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func renderCheckReport(out io.Writer, result checker.Result) {
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Scan", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, file := range result.Files {
		if file.Clean() {
			fmt.Fprintln(out, renderScanLine(statusOK, file.Path, "", colorize))
			continue
		}
		fmt.Fprintln(out, renderScanLine(statusWarn, file.Path, issueDetail(file), colorize))
	}

	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Summary", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderSummaryTable(result.Summary))

	if result.Summary.FilesWithIssues == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "All files look good.")
		return
	}

	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Issues", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, file := range result.Files {
		if file.Clean() {
			continue
		}
		fmt.Fprintf(out, "\n%s (%s):\n", file.Path, file.Title)
		if len(file.Spelling) > 0 {
			fmt.Fprintln(out, "  Spelling:")
			for _, issue := range file.Spelling {
				fmt.Fprintf(out, "    - '%s' -> '%s'\n", issue.Word, issue.Correction)
			}
		}
		if len(file.Grammar) > 0 {
			fmt.Fprintln(out, "  Grammar:")
			for _, issue := range file.Grammar {
				fmt.Fprintf(out, "    - %s -> %s (%s)\n", issue.Text, issue.Suggestion, issue.Explanation)
			}
		}
	}
}

func issueDetail(file checker.FileResult) string {
	var parts []string
	if n := len(file.Spelling); n > 0 {
		parts = append(parts, fmt.Sprintf("%d spelling", n))
	}
	if n := len(file.Grammar); n > 0 {
		parts = append(parts, fmt.Sprintf("%d grammar", n))
	}
	return strings.Join(parts, ", ")
}
