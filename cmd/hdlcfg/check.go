package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hdlcfg/internal/config"
	"hdlcfg/internal/diag"
	"hdlcfg/internal/diagfmt"
	"hdlcfg/internal/directive"
)

type checkResult struct {
	path    string
	entries int
	targets int
	bag     *diag.Bag
}

func newCheckCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check MANIFEST...",
		Short: "Validate directive manifests",
		Long: `Check loads every manifest into its own engine and reports directive
errors such as public_flat_rw without sensitivity or unknown lint rules.
Manifests are checked in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readGlobalOptions(cmd)
			if err != nil {
				return err
			}
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
			timer := newTimer(cmd.Context())

			results := make([]checkResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					bag := diag.NewBag(opts.maxDiagnostics)
					r := diag.BagReporter{Bag: bag}
					m, err := config.Load(path)
					if err != nil {
						return err
					}
					e := directive.New(r, tracerOf(ctx))
					m.Apply(e, r)
					results[i] = checkResult{path: path, entries: m.Len(), targets: len(e.Entries()), bag: bag}
					return nil
				})
			}
			idx := timer.Begin("check")
			if err := g.Wait(); err != nil {
				timer.End(idx, "failed")
				return err
			}
			timer.End(idx, fmt.Sprintf("%d manifests", len(args)))

			all := diag.NewBag(opts.maxDiagnostics)
			for _, res := range results {
				all.Merge(res.bag)
			}
			out := cmd.OutOrStdout()
			if format == "json" {
				all.Sort()
				if err := diagfmt.JSON(out, all, diagfmt.JSONOpts{PathMode: opts.pathMode, BaseDir: workingDir(), Max: opts.maxDiagnostics, IncludeNotes: true}); err != nil {
					return err
				}
			} else {
				printDiagnostics(out, all, opts)
				if !opts.quiet {
					for _, res := range results {
						fmt.Fprintf(out, "%s: %d entries, %d targets, %d problems\n", res.path, res.entries, res.targets, res.bag.Len())
					}
				}
			}
			printTimings(cmd.ErrOrStderr(), timer, opts)
			if all.HasErrors() {
				return &exitError{code: 1, msg: fmt.Sprintf("%d problems in directive manifests", all.Len())}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
