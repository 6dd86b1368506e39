package cli

import (
	"encoding/json"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/beltic/credcheck/internal/adapters/outbound/gitinfo"
	"github.com/beltic/credcheck/internal/adapters/outbound/history"
	"github.com/beltic/credcheck/internal/adapters/outbound/sarif"
	"github.com/beltic/credcheck/internal/adapters/outbound/tui"
	"github.com/beltic/credcheck/internal/application"
	"github.com/beltic/credcheck/internal/domain"
)

// runValidate runs every configured sweep and reports in the chosen format.
func runValidate(cmd *cobra.Command, opts *rootOptions) error {
	switch opts.format {
	case formatText, formatJSON, formatSARIF:
	default:
		return fmt.Errorf("unknown format %q (valid: text, json, sarif)", opts.format)
	}

	p, err := openProject(cmd, opts)
	if err != nil {
		return err
	}
	cfg, err := p.loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var (
		rep  domain.Reporter = domain.NopReporter{}
		text *tui.Reporter
	)
	if opts.format == formatText {
		text = tui.NewReporter(out, tui.NewTheme(out, !opts.noColor), cfg.MaxViolations)
		rep = text
	}

	svc := application.NewValidateService(p.sweeps(rep), rep, gitinfo.New(), p.logger)
	summary, err := svc.Run(cmd.Context(), cfg, p.root)
	if err != nil {
		if domain.ExitCodeFor(err) == domain.ExitInterrupted {
			if text != nil {
				text.Interrupted()
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "Validation interrupted by user")
			}
		}
		return err
	}

	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return err
		}
	case formatSARIF:
		if err := sarif.Write(out, sarif.FromSummary(summary, version)); err != nil {
			return err
		}
	}

	if opts.record {
		// best-effort
		if err := history.New(p.fs).Save(domain.NewRunEntry(summary)); err != nil {
			level.Warn(p.logger).Log("msg", "could not record run", "err", err)
		}
	}

	if summary.Failed() {
		return domain.ErrValidationFailed
	}
	return nil
}
