package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/internal/presentation"
	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/parser"
)

type traceFlags struct {
	engine      string
	detailed    bool
	compression bool
	maxFindHops int
	maxDFSSteps int
	format      string
	step        string
	code        bool
	hideMicro   bool
	color       bool
	maxNodes    int
	maxEdges    int
}

func newTraceCommand(a *app) *cobra.Command {
	f := &traceFlags{}
	cmd := &cobra.Command{
		Use:   "trace <graph>",
		Short: "Build and print the trace of one graph",
		Long: `Reads a graph ("N M" text, YAML or JSON by extension; "-" for text on stdin)
and prints its Kruskal trace. Flags override the trace section of the config.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if f.maxNodes < 0 || f.maxEdges < 0 {
				return fmt.Errorf("--max-nodes and --max-edges must be >= 0")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTrace(cmd, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.engine, "engine", "e", "", "Cycle check: dsu or dfs (default from config)")
	fl.BoolVarP(&f.detailed, "detailed", "d", false, "Emit micro-steps for every find or search")
	fl.BoolVar(&f.compression, "compression", true, "Path compression for the dsu engine")
	fl.IntVar(&f.maxFindHops, "max-find-hops", kruskal.DefaultMaxFindHops, "Narrated hops per find before a summary step")
	fl.IntVar(&f.maxDFSSteps, "max-dfs-steps", kruskal.DefaultMaxDFSSteps, "Narrated events per search before a summary step")
	fl.StringVarP(&f.format, "format", "f", "text", "Output: text, json, yaml or mermaid")
	fl.StringVar(&f.step, "step", "", "Mermaid: label of the step to draw (default last)")
	fl.BoolVar(&f.code, "code", false, "Text: print highlighted pseudo-code lines")
	fl.BoolVar(&f.hideMicro, "hide-micro", false, "Text: omit micro-steps")
	fl.BoolVar(&f.color, "color", true, "Text: colorize when the terminal supports it")
	fl.IntVar(&f.maxNodes, "max-nodes", 0, "Refuse graphs with more nodes (0: no cap)")
	fl.IntVar(&f.maxEdges, "max-edges", 0, "Refuse graphs with more edges (0: no cap)")

	return cmd
}

func (a *app) runTrace(cmd *cobra.Command, f *traceFlags, src string) error {
	g, err := loadGraph(cmd.InOrStdin(), src, parser.WithMaxNodes(f.maxNodes), parser.WithMaxEdges(f.maxEdges))
	if err != nil {
		return err
	}

	engine, opts, err := a.cfg.TraceOptions()
	if err != nil {
		return err
	}
	if f.engine != "" {
		if engine, err = kruskal.ParseEngine(f.engine); err != nil {
			return err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("detailed") {
		opts.Detailed = f.detailed
	}
	if fl.Changed("compression") {
		opts.Compression = f.compression
	}
	if fl.Changed("max-find-hops") {
		opts.MaxFindHops = f.maxFindHops
	}
	if fl.Changed("max-dfs-steps") {
		opts.MaxDFSSteps = f.maxDFSSteps
	}

	steps, err := kruskal.Trace(g, engine, kruskal.WithOptions(opts))
	if err != nil {
		return err
	}
	a.log.Debug("trace built", "engine", engine, "mode", opts.Mode(), "n", g.N, "m", len(g.Edges), "steps", len(steps))

	out := cmd.OutOrStdout()
	switch f.format {
	case "text":
		profile := presentation.ProfileFor(out)
		if !f.color {
			profile = termenv.Ascii
		}
		to := presentation.TextOptions{Profile: profile, HideMicro: f.hideMicro}
		if f.code {
			to.Pseudocode = kruskal.Pseudocode(engine)
		}
		if err = presentation.Text(out, steps, to); err != nil {
			return err
		}
		return presentation.Summary(out, steps, profile)

	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(steps)

	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(steps)

	case "mermaid":
		s, err := pickStep(steps, f.step)
		if err != nil {
			return err
		}
		return presentation.Mermaid(out, g, s)

	default:
		return fmt.Errorf("unknown format %q (text, json, yaml, mermaid)", f.format)
	}
}

// loadGraph reads src, or text from stdin when src is "-".
func loadGraph(stdin io.Reader, src string, opts ...parser.Option) (core.Graph, error) {
	if src == "-" {
		return parser.ParseText(stdin, opts...)
	}
	if _, err := os.Stat(src); err != nil {
		return core.Graph{}, err
	}

	return parser.Load(src, opts...)
}

func pickStep(steps []core.Step, label string) (core.Step, error) {
	if label == "" {
		return steps[len(steps)-1], nil
	}
	for _, s := range steps {
		if s.Label == label {
			return s, nil
		}
	}

	return core.Step{}, fmt.Errorf("no step labelled %q", strings.TrimSpace(label))
}
