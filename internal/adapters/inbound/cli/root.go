package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/beltic/credcheck/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatSARIF = "sarif"
)

// rootOptions holds the flags shared across the command tree.
type rootOptions struct {
	path          string
	configPath    string
	verbose       bool
	noColor       bool
	format        string
	record        bool
	maxViolations int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "credcheck",
		Short: "Validate Beltic credentials against their JSON Schemas",
		Long: "credcheck validates every agent and developer credential example in the repository " +
			"against its JSON Schema and exits non-zero if any credential fails.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.path, "path", ".", "Project root that schema and credential paths are relative to")
	pf.StringVar(&opts.configPath, "config", "", "Config file (default: .credcheck.yaml in the project root)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: text, json or sarif")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Append the run to the validation history")
	cmd.Flags().IntVar(&opts.maxViolations, "max-violations", domain.DefaultMaxViolations, "Violations listed per failed credential (0 lists all)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newExplainCmd(opts))
	cmd.AddCommand(newStripCommentsCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Run executes the command line and returns the process exit code. Failures
// already shown in a report are not repeated; anything else, including a
// panic, is reported as fatal.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "\n✗ Fatal error: %v\n%s", r, debug.Stack())
			code = domain.ExitFailure
		}
	}()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code = domain.ExitCodeFor(err)
	if err != nil && code == domain.ExitFailure && !errors.Is(err, domain.ErrValidationFailed) {
		fmt.Fprintf(stderr, "\n✗ Fatal error: %v\n", err)
	}
	return code
}
