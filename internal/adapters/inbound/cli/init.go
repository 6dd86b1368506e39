package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/beltic/credcheck/internal/adapters/outbound/config"
	"github.com/beltic/credcheck/internal/domain"
)

const configHeader = `# credcheck configuration
# Suites run in order. A suite with "expect: invalid" passes files its schema
# rejects; files listed under runtime_checked may pass the schema because their
# defect is only detectable at runtime.

`

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .credcheck.yaml configuration file",
		Long:  "Create a .credcheck.yaml holding the default sweeps plus the expected-invalid developer suites.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}

			if !force {
				if _, err := p.fs.Stat(domain.ConfigFileName); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", domain.ConfigFileName)
				}
			}

			content, err := generateConfig()
			if err != nil {
				return err
			}

			if err := afero.WriteFile(p.fs, domain.ConfigFileName, content, 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", domain.ConfigFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .credcheck.yaml")

	return cmd
}

func generateConfig() ([]byte, error) {
	cfg := domain.Config{
		MaxViolations: domain.DefaultMaxViolations,
		Suites:        append(domain.DefaultSuites(), domain.ExpectedInvalidSuites()...),
	}
	body, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeader), body...), nil
}
