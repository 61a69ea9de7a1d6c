// Package allocate computes deterministic node assignments for a set of
// same-sized parallel runs over a fixed pool of uniform nodes. Runs that
// need a fractional node share "leftover" capacity in batches that tile
// whole nodes exactly, so the pool is consumed in a single left-to-right
// pass with no node ever over-subscribed.
package allocate

// Fraction is the irreducible form of leftoverCores/coresPerNode.
// NodesPerBatch (p) shared nodes are tiled exactly by the leftover
// portions of RunsPerBatch (q) consecutive runs: L*q == C*p.
type Fraction struct {
	NodesPerBatch int
	RunsPerBatch  int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce returns leftoverCores/coresPerNode in lowest terms.
// leftoverCores of 0 means no sharing at all; every run completes a
// batch on its own, so Reduce returns (0, 1).
func Reduce(leftoverCores, coresPerNode int) Fraction {
	if leftoverCores == 0 {
		return Fraction{NodesPerBatch: 0, RunsPerBatch: 1}
	}
	g := gcd(leftoverCores, coresPerNode)
	return Fraction{
		NodesPerBatch: leftoverCores / g,
		RunsPerBatch:  coresPerNode / g,
	}
}
