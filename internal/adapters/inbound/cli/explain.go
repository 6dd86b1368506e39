package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beltic/credcheck/internal/adapters/outbound/tui"
	"github.com/beltic/credcheck/internal/application"
	"github.com/beltic/credcheck/internal/domain"
)

func newExplainCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "explain <schema> <credential>",
		Short: "Show every schema violation of a single credential",
		Long: "Validate one credential against one schema and list every violation with its " +
			"instance path, failing keyword and schema location. Exits 1 if the credential is invalid.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			schemaPath, err := p.rel(args[0])
			if err != nil {
				return err
			}
			docPath, err := p.rel(args[1])
			if err != nil {
				return err
			}

			exp, err := application.NewExplainService(p.sweeps(nil)).Explain(schemaPath, docPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(exp); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, tui.RenderExplanation(tui.NewTheme(out, !opts.noColor), exp))
			}

			if !exp.Valid {
				return domain.ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
