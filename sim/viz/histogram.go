package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantum-sim/quantum-sim/sim"
)

// barWidth is the number of characters a full-height probability bar spans.
const barWidth = 40

// Styles for the terminal histogram.
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))
)

// Histogram renders the basis-state probabilities of a statevector as a
// terminal bar chart. Bars are scaled so the most probable state fills the
// full width; labels are binary basis indices (bit k = qubit k).
func Histogram(sv *sim.Statevector) string {
	probs := sv.Probabilities()

	maxProb := 0.0
	for _, p := range probs {
		maxProb = math.Max(maxProb, p.Probability)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Quantum State Probabilities"))
	b.WriteString("\n")
	for _, p := range probs {
		label := fmt.Sprintf("|%0*b⟩", sv.NumQubits(), p.Index)
		length := 0
		if maxProb > 0 {
			length = int(math.Ceil(p.Probability / maxProb * barWidth))
		}
		if length < 1 {
			length = 1
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", length)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %.4f", p.Probability)))
		b.WriteString("\n")
	}
	return b.String()
}
