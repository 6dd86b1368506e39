package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/beltic/credcheck/internal/domain"
)

// RenderHistory formats recorded runs for terminal output, oldest first.
func RenderHistory(t *Theme, entries []domain.RunEntry, now time.Time) string {
	if len(entries) == 0 {
		return "  " + t.dim.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + t.bold.Render("Validation History") + "\n")
	b.WriteString("  " + t.dim.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.Commit
		if hash == "" {
			hash = "·······"
		}

		when := e.Timestamp
		if ts := e.Time(); !ts.IsZero() {
			when = humanize.RelTime(ts, now, "ago", "from now")
		}

		status := t.pass.Render(fmt.Sprintf("%d passed", e.Passed))
		if e.Failed > 0 {
			status += "  " + t.fail.Render(fmt.Sprintf("%d failed", e.Failed))
		}

		line := fmt.Sprintf("  %s  %s  %s",
			t.dim.Render(padRight(when, 16)),
			t.dim.Render(hash),
			status,
		)

		if i > 0 {
			diff := e.Failed - entries[i-1].Failed
			if diff > 0 {
				line += "  " + t.fail.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + t.pass.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// RenderExplanation lists every violation of one document.
func RenderExplanation(t *Theme, exp *domain.Explanation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s\n", t.dim.Render("Schema:  "), exp.Schema)
	if exp.SchemaID != "" {
		fmt.Fprintf(&b, "  %s %s\n", t.dim.Render("$id:     "), exp.SchemaID)
	}
	fmt.Fprintf(&b, "  %s %s\n\n", t.dim.Render("Document:"), exp.Document)

	if exp.Valid {
		b.WriteString(t.pass.Render("✓ Document is valid") + "\n")
		return b.String()
	}

	b.WriteString(t.fail.Render(fmt.Sprintf("✗ %d validation error(s)", len(exp.Violations))) + "\n\n")
	for i, v := range exp.Violations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, t.bold.Render(v.Path))
		fmt.Fprintf(&b, "     %s\n", v.Message)
		if v.Keyword != "" {
			fmt.Fprintf(&b, "     %s\n", t.dim.Render("keyword: "+v.Keyword))
		}
		if v.SchemaLocation != "" {
			fmt.Fprintf(&b, "     %s\n", t.dim.Render("schema:  "+v.SchemaLocation))
		}
	}
	return b.String()
}

// RenderStripReport summarises a strip-comments pass.
func RenderStripReport(t *Theme, r *domain.StripReport) string {
	var b strings.Builder

	if len(r.Files) == 0 {
		b.WriteString(t.warn.Render("⚠ No files found matching "+r.Pattern) + "\n")
		return b.String()
	}

	verb := "Removed $comment"
	if r.DryRun {
		verb = "Would remove $comment"
	}
	for _, f := range r.Files {
		switch {
		case f.Err != "":
			fmt.Fprintf(&b, "  %s %s: %s\n", t.fail.Render("✗"), f.Path, f.Err)
		case f.Removed:
			fmt.Fprintf(&b, "  %s %s from %s\n", t.pass.Render("✓"), verb, f.Path)
		default:
			fmt.Fprintf(&b, "  %s %s\n", t.dim.Render("·"), t.dim.Render(f.Path+" (no $comment)"))
		}
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d of %d file(s) updated", r.Removed, len(r.Files))
	if r.DryRun {
		summary = fmt.Sprintf("%d of %d file(s) would be updated", r.Removed, len(r.Files))
	}
	b.WriteString("  " + summary + "\n")
	if r.Errors > 0 {
		b.WriteString("  " + t.fail.Render(fmt.Sprintf("%d file(s) could not be processed", r.Errors)) + "\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
