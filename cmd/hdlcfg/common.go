package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hdlcfg/internal/config"
	"hdlcfg/internal/diag"
	"hdlcfg/internal/diagfmt"
	"hdlcfg/internal/directive"
	"hdlcfg/internal/observ"
	"hdlcfg/internal/trace"
)

type globalOptions struct {
	quiet          bool
	timings        bool
	maxDiagnostics int
	pathMode       diagfmt.PathMode
	color          bool
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Root().PersistentFlags()
	var opts globalOptions
	var err error
	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return opts, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	opts.pathMode = diagfmt.ParsePathMode(pathMode)
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	opts.color = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	return opts, nil
}

func tracerOf(ctx context.Context) trace.Tracer {
	return trace.FromContext(ctx)
}

// newTimer measures phases as children of the command span.
func newTimer(ctx context.Context) *observ.Timer {
	return observ.NewTimer(tracerOf(ctx)).Under(trace.SpanIDFrom(ctx))
}

// loadRules builds one engine from the manifests, applied in order.
// Directive errors land in bag; I/O and syntax errors are returned.
func loadRules(ctx context.Context, timer *observ.Timer, paths []string, bag *diag.Bag) (*directive.Engine, error) {
	r := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	e := directive.New(r, tracerOf(ctx))
	for _, path := range paths {
		err := timer.Track("load "+path, func() (string, error) {
			m, err := config.Load(path)
			if err != nil {
				return "", err
			}
			m.Apply(e, r)
			return fmt.Sprintf("%d entries", m.Len()), nil
		})
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func printDiagnostics(w io.Writer, bag *diag.Bag, opts globalOptions) {
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(w, bag, diagfmt.PrettyOpts{
		Color:     opts.color,
		PathMode:  opts.pathMode,
		BaseDir:   workingDir(),
		ShowNotes: true,
		Max:       opts.maxDiagnostics,
	})
}

func printTimings(w io.Writer, timer *observ.Timer, opts globalOptions) {
	if opts.timings {
		fmt.Fprint(w, timer.Summary())
	}
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
