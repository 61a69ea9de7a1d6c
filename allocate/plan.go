package allocate

import (
	"github.com/pkg/errors"
)

// Request holds the four scalar inputs of one allocation.
// TotalNodes of 0 means "use the whole pool"; callers resolve it via
// Resolve before planning.
type Request struct {
	CoresPerRun  int
	CoresPerNode int
	NumRuns      int
	TotalNodes   int
}

// Resolve fills in the TotalNodes default from the pool size and
// validates that all inputs are positive.
func (r Request) Resolve(poolLen int) (Request, error) {
	if r.TotalNodes == 0 {
		r.TotalNodes = poolLen
	}
	if r.CoresPerRun <= 0 {
		return r, errors.Errorf("cores per run must be positive, got %d", r.CoresPerRun)
	}
	if r.CoresPerNode <= 0 {
		return r, errors.Errorf("cores per node must be positive, got %d", r.CoresPerNode)
	}
	if r.NumRuns <= 0 {
		return r, errors.Errorf("number of runs must be positive, got %d", r.NumRuns)
	}
	if r.TotalNodes <= 0 {
		return r, errors.Errorf("total nodes must be positive, got %d", r.TotalNodes)
	}
	return r, nil
}

// Plan is the batch geometry derived from a Request: how many whole
// nodes each run owns outright, and how leftover cores are shared.
type Plan struct {
	FullNodesPerRun int
	LeftoverCores   int
	Fraction
}

// MakePlan derives the full-node count and leftover-sharing geometry
// for req. req must already be resolved.
func MakePlan(req Request) Plan {
	full := req.CoresPerRun / req.CoresPerNode
	leftover := req.CoresPerRun % req.CoresPerNode
	return Plan{
		FullNodesPerRun: full,
		LeftoverCores:   leftover,
		Fraction:        Reduce(leftover, req.CoresPerNode),
	}
}

// SharedCoresPerRun is the number of cores a run places on each node of
// its batch's shared block. Zero when there is no leftover.
func (p Plan) SharedCoresPerRun() int {
	if p.NodesPerBatch == 0 {
		return 0
	}
	return p.LeftoverCores / p.NodesPerBatch
}

// NodesNeeded is the pool size required to place numRuns runs. A
// trailing incomplete batch still needs its complete footprint: its
// runs address the shared block past the full-node positions of batch
// members that never arrive, so the whole q*full+p stride counts.
func (p Plan) NodesNeeded(numRuns int) int {
	if p.NodesPerBatch == 0 {
		return p.FullNodesPerRun * numRuns
	}
	batches := (numRuns + p.RunsPerBatch - 1) / p.RunsPerBatch
	return batches * (p.RunsPerBatch*p.FullNodesPerRun + p.NodesPerBatch)
}
