// Package presentation renders traces for terminals and documents: colored
// step listings via termenv and Mermaid flowcharts of a single step.
package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/mstrace/core"
)

// Palette colors, same hue family as the web visualizer.
const (
	colorAccept   = "#22c55e"
	colorReject   = "#ef4444"
	colorConsider = "#f59e0b"
	colorMicro    = "#818cf8"
	colorSummary  = "#e879f9"
	colorFrame    = "#94a3b8"
)

// TextOptions tunes Text.
type TextOptions struct {
	// Profile selects the color depth; termenv.Ascii disables color.
	Profile termenv.Profile
	// Pseudocode, when set, prints the highlighted listing lines under
	// every step.
	Pseudocode []string
	// HideMicro drops detailed-mode micro-steps from the listing.
	HideMicro bool
}

// ProfileFor detects the color profile of w.
func ProfileFor(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).Profile
}

// Text writes one block per step: label, kind, explanation, the forest so far
// and optionally the highlighted pseudo-code lines.
func Text(w io.Writer, steps []core.Step, opts TextOptions) error {
	p := opts.Profile
	for _, s := range steps {
		if opts.HideMicro && s.Kind.Micro() {
			continue
		}

		head := p.String(fmt.Sprintf("%-8s %-14s", s.Label, s.Kind)).Foreground(p.Color(kindColor(s.Kind)))
		if s.Kind == core.KindAccept || s.Kind == core.KindReject {
			head = head.Bold()
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", head, s.Explanation); err != nil {
			return err
		}

		forest := p.String(fmt.Sprintf("         forest [%s] weight %g", strings.Join(s.MSTEdgeIDs, " "), s.MSTWeight)).
			Foreground(p.Color(colorFrame)).Faint()
		if _, err := fmt.Fprintln(w, forest); err != nil {
			return err
		}

		for _, ln := range s.HighlightedLines {
			if ln < 1 || ln > len(opts.Pseudocode) {
				continue
			}
			code := p.String(fmt.Sprintf("         %3d | %s", ln, opts.Pseudocode[ln-1])).Foreground(p.Color(colorFrame))
			if _, err := fmt.Fprintln(w, code); err != nil {
				return err
			}
		}
	}

	return nil
}

// Summary writes the one-line outcome of a trace.
func Summary(w io.Writer, steps []core.Step, p termenv.Profile) error {
	if len(steps) == 0 {
		_, err := fmt.Fprintln(w, "empty trace")
		return err
	}
	last := steps[len(steps)-1]
	line := p.String(fmt.Sprintf("%d steps, forest [%s], weight %g",
		len(steps), strings.Join(last.MSTEdgeIDs, " "), last.MSTWeight)).Foreground(p.Color(colorAccept)).Bold()
	_, err := fmt.Fprintln(w, line)

	return err
}

func kindColor(k core.StepKind) string {
	switch {
	case k == core.KindAccept:
		return colorAccept
	case k == core.KindReject:
		return colorReject
	case k == core.KindConsider:
		return colorConsider
	case k.Summary():
		return colorSummary
	case k.Micro():
		return colorMicro
	default:
		return colorFrame
	}
}
