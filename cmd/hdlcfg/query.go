package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/directive"
	"hdlcfg/internal/markerio"
)

// query is one parsed application request.
type query struct {
	kind   string
	target string
	run    func(e *directive.Engine) []directive.Marker
}

const queryUsage = `  module MODULE
  task MODULE TASK [function]
  var MODULE TASK|- VAR
  coverage MODULE BLOCK|- [FILE LINE]
  case FILE LINE`

// parseQuery reads one request from its words. A "-" task means module
// scope; a "-" block is an anonymous block.
func parseQuery(fields []string) (query, error) {
	if len(fields) == 0 {
		return query{}, fmt.Errorf("empty query")
	}
	kind, args := fields[0], fields[1:]
	bad := func() (query, error) {
		return query{}, fmt.Errorf("malformed %s query %q; forms:\n%s", kind, strings.Join(fields, " "), queryUsage)
	}
	switch kind {
	case "module":
		if len(args) != 1 {
			return bad()
		}
		return query{kind: kind, target: args[0], run: func(e *directive.Engine) []directive.Marker {
			return e.ApplyModulePragmas(args[0])
		}}, nil
	case "task":
		if len(args) != 2 && (len(args) != 3 || args[2] != "function") {
			return bad()
		}
		isFunction := len(args) == 3
		return query{kind: kind, target: args[0] + "." + args[1], run: func(e *directive.Engine) []directive.Marker {
			return e.ApplyFunctionTaskPragmas(args[0], args[1], isFunction)
		}}, nil
	case "var":
		if len(args) != 3 {
			return bad()
		}
		task, target := args[1], args[0]+"."+args[1]+"."+args[2]
		if task == "-" {
			task, target = "", args[0]+"."+args[2]
		}
		return query{kind: kind, target: target, run: func(e *directive.Engine) []directive.Marker {
			return e.ApplyVariableAttributes(args[0], task, args[2])
		}}, nil
	case "coverage":
		if len(args) != 2 && len(args) != 4 {
			return bad()
		}
		file, line := "", 0
		if len(args) == 4 {
			n, err := strconv.Atoi(args[3])
			if err != nil || n < 1 {
				return bad()
			}
			file, line = args[2], n
		}
		block, anonymous := args[1], args[1] == "-"
		if anonymous {
			block = ""
		}
		target := args[0] + "." + args[1]
		if file != "" {
			target += "@" + file + ":" + args[3]
		}
		return query{kind: kind, target: target, run: func(e *directive.Engine) []directive.Marker {
			return e.ApplyCoverageBlockSuppression(args[0], block, anonymous, file, line)
		}}, nil
	case "case":
		if len(args) != 2 {
			return bad()
		}
		line, err := strconv.Atoi(args[1])
		if err != nil || line < 1 {
			return bad()
		}
		return query{kind: kind, target: args[0] + ":" + args[1], run: func(e *directive.Engine) []directive.Marker {
			return e.ApplyCasePragmas(args[0], line)
		}}, nil
	}
	return query{}, fmt.Errorf("unknown query kind %q; forms:\n%s", kind, queryUsage)
}

// readQueries parses one request per line. Blank lines and lines starting
// with # are skipped.
func readQueries(r io.Reader) ([]query, error) {
	var out []query
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		q, err := parseQuery(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, q)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return out, nil
}

func newQueryCmd() *cobra.Command {
	var (
		rules  []string
		format string
		batch  bool
	)
	cmd := &cobra.Command{
		Use:   "query [KIND ARGS...]",
		Short: "Print the markers a compiler pass would attach to a target",
		Long: "Query runs the application API against the rule manifests.\n\nForms:\n" + queryUsage + `

With --batch, queries are read from stdin, one per line, and answered as a
stream (msgpack or json records for out-of-process passes).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readGlobalOptions(cmd)
			if err != nil {
				return err
			}
			text := format == "text"
			var mf markerio.Format
			if !text {
				if mf, err = markerio.ParseFormat(format); err != nil {
					return err
				}
			}

			var queries []query
			switch {
			case batch && len(args) > 0:
				return fmt.Errorf("--batch takes no arguments")
			case batch:
				if queries, err = readQueries(cmd.InOrStdin()); err != nil {
					return err
				}
			default:
				q, err := parseQuery(args)
				if err != nil {
					return err
				}
				queries = []query{q}
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

			out := cmd.OutOrStdout()
			var enc *markerio.Encoder
			if !text {
				enc = markerio.NewEncoder(out, mf)
			}
			idx := timer.Begin("query")
			for _, q := range queries {
				ms := q.run(e)
				if text {
					fmt.Fprintf(out, "%s %s: %s\n", q.kind, q.target, directive.FormatMarkers(ms))
					continue
				}
				if err := enc.Encode(markerio.NewRecord(q.kind, q.target, ms)); err != nil {
					timer.End(idx, "failed")
					return fmt.Errorf("failed to write markers: %w", err)
				}
			}
			timer.End(idx, fmt.Sprintf("%d queries", len(queries)))
			printTimings(cmd.ErrOrStderr(), timer, opts)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&rules, "rules", "r", nil, "rule manifest (repeatable, applied in order)")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json|msgpack)")
	cmd.Flags().BoolVar(&batch, "batch", false, "read queries from stdin")
	return cmd
}
