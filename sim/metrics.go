// Aggregates measurement outcomes across repeated shots for final reporting.

package sim

import (
	"fmt"
	"sort"
)

// Counts is a histogram of measurement outcomes over repeated shots.
// Bit i of an outcome key is the measured value of Qubits[i].
type Counts struct {
	Qubits    []int // measured qubit indices, in measurement order
	Shots     int
	Histogram map[int]int // outcome bit pattern -> occurrences
}

// NewCounts creates an empty histogram for the given measurement plan.
func NewCounts(qubits []int, shots int) *Counts {
	return &Counts{
		Qubits:    append([]int(nil), qubits...),
		Shots:     shots,
		Histogram: make(map[int]int),
	}
}

// Record adds one observed outcome.
func (c *Counts) Record(outcome int) {
	c.Histogram[outcome]++
}

// Probability returns the observed frequency of an outcome.
func (c *Counts) Probability(outcome int) float64 {
	if c.Shots == 0 {
		return 0
	}
	return float64(c.Histogram[outcome]) / float64(c.Shots)
}

// Outcomes returns the observed outcome keys sorted ascending.
func (c *Counts) Outcomes() []int {
	outcomes := make([]int, 0, len(c.Histogram))
	for outcome := range c.Histogram {
		outcomes = append(outcomes, outcome)
	}
	sort.Ints(outcomes)
	return outcomes
}

// Print displays the aggregated histogram at the end of a sampling run.
func (c *Counts) Print() {
	fmt.Println("=== Measurement Counts ===")
	fmt.Printf("Qubits measured      : %v\n", c.Qubits)
	fmt.Printf("Shots                : %d\n", c.Shots)
	for _, outcome := range c.Outcomes() {
		fmt.Printf("  %0*b : %6d  (%.4f)\n",
			len(c.Qubits), outcome, c.Histogram[outcome], c.Probability(outcome))
	}
}
