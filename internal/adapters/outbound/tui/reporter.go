package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beltic/credcheck/internal/domain"
)

const bannerTitle = "Beltic Credential Validation - All Credentials"

// Reporter streams a human-readable validation report as sweeps progress.
type Reporter struct {
	w             io.Writer
	theme         *Theme
	maxViolations int
}

// NewReporter creates a Reporter writing to w. At most maxViolations
// violations are listed per failed file; zero or less lists all of them.
func NewReporter(w io.Writer, theme *Theme, maxViolations int) *Reporter {
	return &Reporter{w: w, theme: theme, maxViolations: maxViolations}
}

func (r *Reporter) RunStarted() {
	fmt.Fprintf(r.w, "%s\n\n", r.theme.Banner(bannerTitle))
}

func (r *Reporter) SweepStarted(spec domain.SweepSpec) {
	rule := r.theme.Rule()
	fmt.Fprintf(r.w, "%s\n%s\n%s\n", rule, r.theme.section.Render("  "+spec.Label), rule)
}

func (r *Reporter) FilesFound(spec domain.SweepSpec, count int) {
	fmt.Fprintln(r.w, r.theme.info.Render(fmt.Sprintf("  Found %d %s credential(s)", count, credentialType(spec))))
	fmt.Fprintln(r.w)
}

// FileStarted names the file before it is validated.
func (r *Reporter) FileStarted(_ domain.SweepSpec, path string) {
	fmt.Fprintf(r.w, "    %s... ", filepath.Base(path))
}

func (r *Reporter) FileChecked(_ domain.SweepSpec, fr domain.FileResult) {
	if fr.Passed() {
		switch {
		case fr.Note == "":
			fmt.Fprintln(r.w, r.theme.pass.Render("✓"))
		case len(fr.Violations) == 0:
			fmt.Fprintln(r.w, r.theme.warn.Render("⚠ "+capitalize(fr.Note)))
		default:
			fmt.Fprintln(r.w, r.theme.pass.Render("✓ "+fr.Note))
		}
		return
	}

	switch fr.Kind {
	case domain.KindDocumentMalformed:
		fmt.Fprintln(r.w, r.theme.fail.Render("✗ Invalid JSON: "+fr.Detail))
	case domain.KindSchemaViolation:
		fmt.Fprintln(r.w, r.theme.fail.Render("✗"))
		r.violations(fr.Violations)
	case domain.KindAcceptedInvalid:
		fmt.Fprintln(r.w, r.theme.fail.Render("✗ "+fr.Detail))
	default:
		fmt.Fprintln(r.w, r.theme.fail.Render("✗ Error: "+fr.Detail))
	}
}

func (r *Reporter) violations(vs []domain.Violation) {
	shown, suppressed := domain.Truncate(vs, r.maxViolations)
	fmt.Fprintln(r.w, "      Errors:")
	for _, v := range shown {
		fmt.Fprintf(r.w, "        - %s: %s\n", v.Path, v.Message)
	}
	if suppressed > 0 {
		fmt.Fprintf(r.w, "        ... and %d more\n", suppressed)
	}
}

func (r *Reporter) SweepFinished(res domain.SweepResult) {
	switch {
	case res.Err != nil:
		fmt.Fprintln(r.w, r.theme.fail.Render("  ✗ "+sweepError(res.Err)))
	case res.NoMatches:
		fmt.Fprintln(r.w, r.theme.warn.Render("  ⚠ No files found matching "+res.Spec.Pattern))
	}
	fmt.Fprintf(r.w, "  Result: %d passed, %d failed\n\n", res.Tally.Passed, res.Tally.Failed)
}

func (r *Reporter) RunFinished(s domain.RunSummary) {
	fmt.Fprintln(r.w, r.theme.Banner("Validation Summary"))
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  Total Credentials: %d\n", s.Total.Total())
	fmt.Fprintln(r.w, r.theme.pass.Render(fmt.Sprintf("  Passed:            %d", s.Total.Passed)))

	if s.Failed() {
		fmt.Fprintln(r.w, r.theme.fail.Render(fmt.Sprintf("  Failed:            %d", s.Total.Failed)))
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.theme.fail.Render(fmt.Sprintf("✗ %d credential(s) failed validation", s.Total.Failed)))
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.theme.pass.Render(fmt.Sprintf("✓ All %d credentials are valid", s.Total.Passed)))
	fmt.Fprintln(r.w)
}

// Interrupted prints the notice shown when the user stops a run.
func (r *Reporter) Interrupted() {
	fmt.Fprint(r.w, "\n\n")
	fmt.Fprintln(r.w, r.theme.warn.Render("Validation interrupted by user"))
}

func sweepError(err *domain.Error) string {
	switch err.Kind {
	case domain.KindSchemaNotFound:
		return "Schema not found: " + err.Path
	case domain.KindSchemaMalformed:
		return fmt.Sprintf("Invalid schema %s: %v", err.Path, err.Err)
	default:
		return fmt.Sprintf("Error reading schema %s: %v", err.Path, err.Err)
	}
}

func credentialType(spec domain.SweepSpec) string {
	if spec.CredentialType != "" {
		return spec.CredentialType
	}
	return strings.ToLower(spec.Label)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
