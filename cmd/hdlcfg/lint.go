package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/directive"
	"hdlcfg/internal/findings"
	"hdlcfg/internal/trace"
	"hdlcfg/internal/waiver"
)

type lintSummary struct {
	total      int
	suppressed int
	unknown    int
}

func newLintCmd() *cobra.Command {
	var (
		rules          []string
		waiverOutput   string
		failOnWarnings bool
	)
	cmd := &cobra.Command{
		Use:   "lint LOG...",
		Short: "Filter compiler warnings through lint directives",
		Long: `Lint reads %Warning lines from compiler logs ("-" reads stdin), drops the
ones switched off by the lint directives of the rule manifests and prints
the rest. Warnings with a rule name hdlcfg does not know are always kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readGlobalOptions(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			timer := newTimer(ctx)
			bag := diag.NewBag(opts.maxDiagnostics)

			e, err := loadRules(ctx, timer, rules, bag)
			if err != nil {
				return err
			}
			printDiagnostics(cmd.ErrOrStderr(), bag, opts)
			if bag.HasErrors() {
				return &exitError{code: 1, msg: "rule manifests have errors"}
			}

			var all []findings.Finding
			for _, path := range args {
				err := timer.Track("parse "+path, func() (string, error) {
					fs, err := readFindings(cmd.InOrStdin(), path)
					if err != nil {
						return "", err
					}
					all = append(all, fs...)
					return fmt.Sprintf("%d warnings", len(fs)), nil
				})
				if err != nil {
					return err
				}
			}

			idx := timer.Begin("filter")
			kept, sum := filterFindings(e, tracerOf(ctx), all)
			timer.End(idx, fmt.Sprintf("%d kept", len(kept)))

			out := cmd.OutOrStdout()
			rule := color.New(color.FgYellow, color.Bold)
			for _, f := range kept {
				fmt.Fprintf(out, "%s %s: %s\n", rule.Sprintf("%%Warning-%s:", f.Rule), f.Pos(), f.Message)
			}

			if waiverOutput != "" {
				w := waiver.NewWriter()
				for _, f := range kept {
					w.Add(f.Rule, f.File, f.Message)
				}
				if err := w.WriteFile(waiverOutput); err != nil {
					return err
				}
			}
			if !opts.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d warnings, %d suppressed, %d kept (%d with unknown rule)\n",
					sum.total, sum.suppressed, len(kept), sum.unknown)
			}
			printTimings(cmd.ErrOrStderr(), timer, opts)
			if failOnWarnings && len(kept) > 0 {
				return &exitError{code: 2, msg: fmt.Sprintf("%d warnings not waived", len(kept))}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&rules, "rules", "r", nil, "rule manifest (repeatable, applied in order)")
	cmd.Flags().StringVar(&waiverOutput, "waiver-output", "", "write a waiver file for the kept warnings")
	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, "exit with status 2 when warnings remain")
	return cmd
}

func readFindings(stdin io.Reader, path string) ([]findings.Finding, error) {
	if path == "-" {
		return findings.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	defer f.Close()
	return findings.Parse(f)
}

// filterFindings walks the findings in position order, so every file's
// lines reach the engine without going backwards.
func filterFindings(e *directive.Engine, t trace.Tracer, fs []findings.Finding) ([]findings.Finding, lintSummary) {
	findings.SortByPosition(fs)
	sum := lintSummary{total: len(fs)}
	kept := make([]findings.Finding, 0, len(fs))
	for _, f := range fs {
		for _, ev := range e.ApplySuppression(f.File, f.Line) {
			trace.Point(t, trace.ScopeQuery, "lint:event", f.File+":"+ev.String())
		}
		if f.Code == diag.UnknownCode {
			sum.unknown++
			kept = append(kept, f)
			continue
		}
		if !e.WarnEnabled(f.File, f.Code) {
			sum.suppressed++
			continue
		}
		kept = append(kept, f)
	}
	return kept, sum
}
