package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/parser"
)

// weightTolerance absorbs float summation order differences.
const weightTolerance = 1e-9

// caseResult is one golden case: the expected weight and what every
// implementation produced. Detailed holds the micro-step runs, in the order
// of detailedRuns.
type caseResult struct {
	Name     string
	Expected float64
	Ref      float64
	DSU      float64
	DSUNoPC  float64
	DFS      float64
	Detailed []float64
	Err      error
}

// detailedRuns narrate every find and search. Budgets of 1 force the
// truncation summaries on any non-trivial walk.
var detailedRuns = []struct {
	engine kruskal.Engine
	opts   []kruskal.Option
}{
	{kruskal.EngineDSU, []kruskal.Option{kruskal.WithDetailed(true), kruskal.WithCompression(true)}},
	{kruskal.EngineDSU, []kruskal.Option{kruskal.WithDetailed(true), kruskal.WithCompression(false)}},
	{kruskal.EngineDSU, []kruskal.Option{kruskal.WithDetailed(true), kruskal.WithCompression(true), kruskal.WithMaxFindHops(1)}},
	{kruskal.EngineDSU, []kruskal.Option{kruskal.WithDetailed(true), kruskal.WithCompression(false), kruskal.WithMaxFindHops(1)}},
	{kruskal.EngineDFS, []kruskal.Option{kruskal.WithDetailed(true)}},
	{kruskal.EngineDFS, []kruskal.Option{kruskal.WithDetailed(true), kruskal.WithMaxDFSSteps(1)}},
}

func (r caseResult) pass() bool {
	if r.Err != nil || len(r.Detailed) != len(detailedRuns) {
		return false
	}
	for _, got := range append([]float64{r.Ref, r.DSU, r.DSUNoPC, r.DFS}, r.Detailed...) {
		if math.Abs(got-r.Expected) > weightTolerance {
			return false
		}
	}

	return true
}

func newVerifyCommand(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "verify <dir>",
		Short: "Check golden *.in/*.out cases against every engine",
		Long: `For every NAME.in in dir, parses the graph, reads the expected forest weight from
NAME.out and compares it with the reference Kruskal, the union-find trace with and
without path compression and the depth-first trace, each coarse and detailed, the
detailed runs also with a budget of 1 so every truncation summary is exercised.
Exits non-zero on any mismatch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := verifyDir(cmdContext(cmd), args[0], jobs)
			if err != nil {
				return err
			}
			failed := printResults(cmd.OutOrStdout(), results)
			a.log.Info("verify finished", "dir", args[0], "cases", len(results), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("verify: %d of %d cases failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Cases checked in parallel")

	return cmd
}

// verifyDir checks every *.in case under dir with at most jobs goroutines.
// Results come back sorted by name.
func verifyDir(ctx context.Context, dir string, jobs int) ([]caseResult, error) {
	inputs, err := filepath.Glob(filepath.Join(dir, "*.in"))
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("verify: no *.in files in %s", dir)
	}
	if jobs < 1 {
		jobs = 1
	}

	p := pool.NewWithResults[caseResult]().WithContext(ctx).WithMaxGoroutines(jobs)
	for _, in := range inputs {
		p.Go(func(ctx context.Context) (caseResult, error) {
			if err := ctx.Err(); err != nil {
				return caseResult{}, err
			}
			return verifyCase(in), nil
		})
	}
	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	return results, nil
}

// verifyCase never fails; problems are recorded in caseResult.Err.
func verifyCase(inPath string) caseResult {
	r := caseResult{Name: strings.TrimSuffix(filepath.Base(inPath), ".in")}

	raw, err := os.ReadFile(strings.TrimSuffix(inPath, ".in") + ".out")
	if err != nil {
		r.Err = err
		return r
	}
	if r.Expected, err = strconv.ParseFloat(strings.TrimSpace(string(raw)), 64); err != nil {
		r.Err = fmt.Errorf("expected weight: %w", err)
		return r
	}

	f, err := os.Open(inPath)
	if err != nil {
		r.Err = err
		return r
	}
	defer f.Close()
	g, err := parser.ParseText(f)
	if err != nil {
		r.Err = err
		return r
	}

	if _, r.Ref, err = kruskal.Kruskal(g); err != nil {
		r.Err = err
		return r
	}
	runs := []struct {
		dst    *float64
		engine kruskal.Engine
		opts   []kruskal.Option
	}{
		{&r.DSU, kruskal.EngineDSU, []kruskal.Option{kruskal.WithCompression(true)}},
		{&r.DSUNoPC, kruskal.EngineDSU, []kruskal.Option{kruskal.WithCompression(false)}},
		{&r.DFS, kruskal.EngineDFS, nil},
	}
	for _, run := range runs {
		steps, err := kruskal.Trace(g, run.engine, run.opts...)
		if err != nil {
			r.Err = err
			return r
		}
		*run.dst = kruskal.FinalWeight(steps)
	}
	for _, run := range detailedRuns {
		steps, err := kruskal.Trace(g, run.engine, run.opts...)
		if err != nil {
			r.Err = err
			return r
		}
		r.Detailed = append(r.Detailed, kruskal.FinalWeight(steps))
	}

	return r
}

// detailedColumn is "ok" when every detailed run matches, else the first
// deviating weight.
func (r caseResult) detailedColumn() string {
	for _, got := range r.Detailed {
		if math.Abs(got-r.Expected) > weightTolerance {
			return strconv.FormatFloat(got, 'g', -1, 64)
		}
	}

	return "ok"
}

// printResults writes the result table and returns the failure count.
func printResults(w io.Writer, results []caseResult) int {
	failed := 0
	fmt.Fprintf(w, "%-16s%-12s%-12s%-12s%-12s%-12s%-12s%s\n", "Case", "Expected", "Kruskal", "DSU+PC", "DSU-NoPC", "DFS", "Detailed", "Result")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for _, r := range results {
		status := "PASS"
		if !r.pass() {
			status = "FAIL"
			failed++
		}
		if r.Err != nil {
			fmt.Fprintf(w, "%-16s%s (%v)\n", r.Name, status, r.Err)
			continue
		}
		fmt.Fprintf(w, "%-16s%-12g%-12g%-12g%-12g%-12g%-12s%s\n", r.Name, r.Expected, r.Ref, r.DSU, r.DSUNoPC, r.DFS, r.detailedColumn(), status)
	}

	return failed
}
