// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/visibility-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a 20-char bar proportional to a 0-100 score.
func scoreBar(score float64) string {
	filled := int(score / 5)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// PrintScoreResult outputs a human-readable summary of a Digital Control Score.
func (p *Printer) PrintScoreResult(result *types.DCSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final Score:       %.0f / 100\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Industry Average:  %.0f\n", result.IndustryAverage))
	sb.WriteString("\n")

	sb.WriteString("Layer Breakdown:\n")
	for _, layer := range result.LayerBreakdown {
		sb.WriteString(fmt.Sprintf("  %-22s %5.1f  %s\n", layer.Name, layer.Score, scoreBar(layer.Score)))
	}
	sb.WriteString("\n")

	if result.DistanceToSafetyZone > 0 {
		sb.WriteString(fmt.Sprintf("Safety zone:       %.0f points away\n", result.DistanceToSafetyZone))
	} else {
		sb.WriteString("Safety zone:       reached ✓\n")
	}
	if result.DistanceToDominanceZone > 0 {
		sb.WriteString(fmt.Sprintf("Dominance zone:    %.0f points away", result.DistanceToDominanceZone))
	} else {
		sb.WriteString("Dominance zone:    reached ✓")
	}

	p.printBox("DIGITAL CONTROL SCORE", sb.String())

	p.printCompetitors(result.CompetitorComparison)
}

// printCompetitors outputs the estimated competitor comparison, if any.
func (p *Printer) printCompetitors(competitors []types.CompetitorEstimate) {
	if len(competitors) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(competitors), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := competitors[i]
		name := c.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %-32s %5.1f", name, c.Score))
		if c.Estimated {
			sb.WriteString("  (est.)")
		}
		sb.WriteString("\n")
	}
	if len(competitors) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(competitors)-maxItemsToShow))
	}

	p.printBox("COMPETITOR COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPressureResult outputs a human-readable competitive pressure summary.
func (p *Printer) PrintPressureResult(result *types.PressureResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pressure Index:    %.0f / 100\n", result.CompetitivePressureIndex))
	sb.WriteString(fmt.Sprintf("Risk Level:        %s\n", result.RiskAccelerationIndicator))
	sb.WriteString("\n")

	sb.WriteString("Signals:\n")
	sb.WriteString(fmt.Sprintf("  AI Narrative Loss        %5.1f\n", result.Signals.AINarrativeLoss))
	sb.WriteString(fmt.Sprintf("  Competitive Share        %5.1f\n", result.Signals.CompetitiveShare))
	sb.WriteString(fmt.Sprintf("  Sentiment Risk           %5.1f\n", result.Signals.SentimentRisk))
	sb.WriteString(fmt.Sprintf("  Reputation Vulnerability %5.1f\n", result.Signals.ReputationVulnerability))
	sb.WriteString(fmt.Sprintf("  Review Risk              %5.1f\n", result.Signals.ReviewRisk))
	sb.WriteString("\n")

	disclaimer := result.Disclaimer
	if len(disclaimer) > 50 {
		disclaimer = disclaimer[:47] + "..."
	}
	sb.WriteString(disclaimer)

	p.printBox("COMPETITIVE PRESSURE INDEX", sb.String())
}
