package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hdlcfg/internal/trace"
	"hdlcfg/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hdlcfg",
		Short: "Directive resolution for HDL compiler front ends",
		Long: `hdlcfg loads directive manifests (lint waivers, inline and public pragmas,
coverage and case pragmas), checks them, filters compiler warning logs through
them and answers marker queries for IR passes.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime execution trace to file")

	var stopTracing, stopProfiling func()
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := setupColor(cmd); err != nil {
			return err
		}
		var err error
		if stopProfiling, err = setupProfiling(cmd); err != nil {
			return err
		}
		if stopTracing, err = setupTracing(cmd); err != nil {
			stopProfiling()
			return err
		}
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if stopTracing != nil {
			stopTracing()
		}
		if stopProfiling != nil {
			stopProfiling()
		}
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newLintCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	root := newRootCmd()
	ctx := context.Background()
	defer dumpTraceOnPanic(root)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(exitCode(err))
	}
}

// dumpTraceOnPanic writes the ring buffer, if any, before the panic goes on.
func dumpTraceOnPanic(root *cobra.Command) {
	r := recover()
	if r == nil {
		return
	}
	if ring := ringOf(trace.FromContext(root.Context())); ring != nil {
		fmt.Fprintln(os.Stderr, "--- trace (most recent last) ---")
		if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
			fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
		}
	}
	panic(r)
}

func ringOf(t trace.Tracer) *trace.RingTracer {
	switch tr := t.(type) {
	case *trace.RingTracer:
		return tr
	case *trace.MultiTracer:
		return tr.Ring()
	}
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func setupColor(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color %q (expected: auto|on|off)", colorFlag)
	}
	return nil
}
