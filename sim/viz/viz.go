// Package viz renders circuits and statevector probabilities for terminal
// output. It only reads the simulation types, never mutates them.
package viz

import (
	"fmt"
	"strings"

	"github.com/quantum-sim/quantum-sim/sim"
)

// cellWidth is the character width of one operation column in a diagram.
const cellWidth = 5

// Diagram renders a circuit as a text diagram, one line per qubit.
// Single-qubit gates show their name on the target line; CNOT shows the
// control as ● and the target as ⊕; other two-qubit gates mark both lines.
//
//	Q0: ──H────●──
//	Q1: ───────⊕──
func Diagram(c *sim.Circuit) string {
	rows := make([][]string, c.NumQubits)
	for q := range rows {
		rows[q] = make([]string, 0, len(c.Operations))
	}

	for _, op := range c.Operations {
		cells := make([]string, c.NumQubits)
		for q := range cells {
			cells[q] = strings.Repeat("─", cellWidth)
		}
		switch op.Gate.Arity() {
		case 1:
			cells[op.Targets[0]] = gateCell(op.Gate.Name)
		case 2:
			if op.Gate.Name == "CNOT" {
				cells[op.Targets[0]] = gateCell("●")
				cells[op.Targets[1]] = gateCell("⊕")
			} else {
				cells[op.Targets[0]] = gateCell("╳")
				cells[op.Targets[1]] = gateCell("╳")
			}
		}
		for q := range cells {
			rows[q] = append(rows[q], cells[q])
		}
	}

	var b strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		fmt.Fprintf(&b, "Q%d: %s\n", q, strings.Join(rows[q], ""))
	}
	return b.String()
}

// gateCell centers a gate symbol in a wire segment of cellWidth runes.
func gateCell(name string) string {
	runes := []rune(name)
	if len(runes) > cellWidth-2 {
		runes = runes[:cellWidth-2]
	}
	pad := cellWidth - len(runes)
	left := pad / 2
	right := pad - left
	return strings.Repeat("─", left) + string(runes) + strings.Repeat("─", right)
}
