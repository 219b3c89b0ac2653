package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/usecase"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	ngColor   = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func formatPattern(colors model.ColorSequence) string {
	if len(colors) == 0 {
		return "(none)"
	}
	return strings.Join(colors, " / ")
}

func formatConnectors(connectors model.ConnectorSet) string {
	if len(connectors) == 0 {
		return "(none)"
	}
	return strings.Join(connectors.Normalize(), ", ")
}

func renderSummaries(w io.Writer, summaries []model.ConflictSummary) {
	for _, s := range summaries {
		label := s.LabelID
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(w, "  - #%s %s ", s.ItemID, s.Name)
		_, _ = dimColor.Fprintf(w, "[%s]", label)
		fmt.Fprintln(w)
	}
}

func renderConflicts(w io.Writer, candidate model.Candidate, result model.ConflictResult) {
	fmt.Fprintf(w, "connectors: %s\n", formatConnectors(candidate.Connectors))
	fmt.Fprintf(w, "pattern:    %s\n", formatPattern(candidate.Colors))

	if !result.HasConflicts() {
		_, _ = okColor.Fprintln(w, "OK: no conflicting items")
		return
	}

	_, _ = ngColor.Fprintf(w, "CONFLICT: %d item(s) share this pattern\n", len(result))
	renderSummaries(w, result)
}

func renderUnknownColors(w io.Writer, colors model.ColorSequence, palette model.Palette) {
	for _, name := range colors {
		if _, ok := palette.Lookup(name); !ok {
			_, _ = warnColor.Fprintf(w, "warning: %q is not in the color master\n", name)
		}
	}
}

func renderGeneration(w io.Writer, gen *model.Generation) {
	if gen.IsDisabled() {
		_, _ = warnColor.Fprintln(w, "DISABLED: not enough eligible colors for the requested length")
		return
	}

	switch gen.Status {
	case types.GenerationStatusFound:
		_, _ = okColor.Fprintf(w, "FOUND after %d attempt(s)\n", gen.Attempts)
	case types.GenerationStatusFallback:
		_, _ = warnColor.Fprintf(w, "FALLBACK: no free pattern in %d attempts\n", gen.Attempts)
	}

	fmt.Fprintf(w, "pattern: %s\n", formatPattern(gen.Colors))
	if len(gen.Conflicts) > 0 {
		_, _ = ngColor.Fprintf(w, "conflicts with %d item(s)\n", len(gen.Conflicts))
		renderSummaries(w, gen.Conflicts)
	}
}

func renderAudit(w io.Writer, result *usecase.AuditResult) {
	fmt.Fprintf(w, "checked %d item(s), skipped %d without connectors or colors\n", result.Checked, result.Skipped)

	if !result.HasIssues() {
		_, _ = okColor.Fprintln(w, "OK: every active cable pattern is unique")
		return
	}

	_, _ = ngColor.Fprintf(w, "CONFLICT: %d shared pattern(s)\n", len(result.Groups))
	for _, group := range result.Groups {
		fmt.Fprintf(w, "%s | %s\n", formatConnectors(group.Connectors), formatPattern(group.Colors))
		renderSummaries(w, group.Items)
	}
}

func renderPalette(w io.Writer, palette model.Palette, eligible model.Palette, length int, canGenerate bool) {
	usable := make(map[string]bool, len(eligible))
	for _, c := range eligible {
		usable[c.Name] = true
	}

	for _, c := range palette {
		mark := okColor.Sprint("usable")
		if !usable[c.Name] {
			mark = dimColor.Sprint("excluded")
		} else {
			// later entries with the same name are excluded
			delete(usable, c.Name)
		}
		fmt.Fprintf(w, "%-4s %-16s %s %s\n", c.ID, c.Name, c.HexCode, mark)
	}

	if canGenerate {
		_, _ = okColor.Fprintf(w, "%d eligible color(s): patterns of length %d can be generated\n", len(eligible), length)
	} else {
		_, _ = warnColor.Fprintf(w, "%d eligible color(s): generation of length %d is disabled\n", len(eligible), length)
	}
}
