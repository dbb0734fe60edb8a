package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"booklint/internal/config"
	"booklint/internal/glossary"
)

func newGlossaryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "glossary [path]",
		Short: "Convert bold-term glossary entries to heading form",
		Long: `Rewrites **Term** / ": Definition" glossary blocks into "## Term" headings.

The file is rewritten in place. With no argument the configured glossary
path is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := cfg.Glossary.Path
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve glossary path: %w", err)
				}
				target = expanded
			}

			logger := ctx.logger(cmd.ErrOrStderr())
			logger.Debug("converting glossary", "path", target)

			count, err := glossary.Convert(target)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d terms.\n", count)
			return nil
		},
	}
}
