package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/directive"
)

type dumpEntry struct {
	Store   string `json:"store"`
	Scope   string `json:"scope,omitempty"`
	Pattern string `json:"pattern"`
	Detail  string `json:"detail,omitempty"`
}

func newDumpCmd() *cobra.Command {
	var (
		rules  []string
		format string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "List the registered directive targets per store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readGlobalOptions(cmd)
			if err != nil {
				return err
			}
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
			ctx := cmd.Context()
			timer := newTimer(ctx)
			bag := diag.NewBag(opts.maxDiagnostics)
			e, err := loadRules(ctx, timer, rules, bag)
			if err != nil {
				return err
			}
			printDiagnostics(cmd.ErrOrStderr(), bag, opts)

			entries := e.Entries()
			if format == "json" {
				out := make([]dumpEntry, len(entries))
				for i, en := range entries {
					out[i] = dumpEntry(en)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			renderEntries(cmd.OutOrStdout(), entries, opts.color)
			printTimings(cmd.ErrOrStderr(), timer, opts)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&rules, "rules", "r", nil, "rule manifest (repeatable, applied in order)")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

// renderEntries prints one aligned table per store, in the order stores
// first appear.
func renderEntries(w io.Writer, entries []directive.Entry, colored bool) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no directives")
		return
	}
	var order []string
	groups := make(map[string][]directive.Entry)
	for _, en := range entries {
		if _, ok := groups[en.Store]; !ok {
			order = append(order, en.Store)
		}
		groups[en.Store] = append(groups[en.Store], en)
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	for i, store := range order {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := fmt.Sprintf("%s (%d)", store, len(groups[store]))
		if colored {
			title = heading.Render(title)
		}
		fmt.Fprintln(w, title)

		scopeWidth, patternWidth := 0, 0
		for _, en := range groups[store] {
			scopeWidth = max(scopeWidth, runewidth.StringWidth(en.Scope))
			patternWidth = max(patternWidth, runewidth.StringWidth(en.Pattern))
		}
		for _, en := range groups[store] {
			var sb strings.Builder
			sb.WriteString("  ")
			if scopeWidth > 0 {
				sb.WriteString(runewidth.FillRight(en.Scope, scopeWidth))
				sb.WriteString("  ")
			}
			sb.WriteString(runewidth.FillRight(en.Pattern, patternWidth))
			if en.Detail != "" {
				sb.WriteString("  ")
				sb.WriteString(en.Detail)
			}
			fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
		}
	}
}
