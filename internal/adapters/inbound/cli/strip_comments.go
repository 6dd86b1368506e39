package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beltic/credcheck/internal/adapters/outbound/tui"
	"github.com/beltic/credcheck/internal/application"
	"github.com/beltic/credcheck/internal/domain"
)

func newStripCommentsCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "strip-comments [pattern]",
		Short: "Remove top-level $comment keys from credential fixtures",
		Long: "Remove the top-level \"$comment\" annotation from every JSON file matching pattern " +
			"(relative to the project root, default " + application.DefaultStripPattern + "). " +
			"Key order is preserved and files are rewritten with two-space indentation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := application.DefaultStripPattern
			if len(args) > 0 {
				pattern = args[0]
			}

			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}

			report, err := application.NewStripService(p.fs, p.logger).Strip(pattern, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderStripReport(tui.NewTheme(out, !opts.noColor), report))

			if report.Errors > 0 {
				return fmt.Errorf("%w: %d file(s) could not be processed", domain.ErrValidationFailed, report.Errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing files")

	return cmd
}
