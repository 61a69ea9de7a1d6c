package allocate

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"

	"github.com/nodecarve/nodecarve/cluster"
	"github.com/nodecarve/nodecarve/common/errors"
)

// Share is one run's claim on one node: Cores cores of the node at
// 1-indexed pool position Index.
type Share struct {
	Index int
	Node  cluster.Node
	Cores int
}

func (s Share) String() string {
	return fmt.Sprintf("%s:%d", s.Node.Id(), s.Cores)
}

// RunAssignment is the ordered share list for one run: full-node
// shares first, then at most one block of leftover shares.
type RunAssignment struct {
	Run    int
	Shares []Share
}

// Cores is the total core count this run was assigned.
func (ra RunAssignment) Cores() int {
	total := 0
	for _, s := range ra.Shares {
		total += s.Cores
	}
	return total
}

// Assignment maps every run (in order, 1..numRuns) to its shares.
type Assignment []RunAssignment

// assigner walks the pool with a monotonic cursor. The cursor only
// ever moves forward: full-node blocks advance it immediately, a
// batch's shared block advances it once, when the batch's last run
// has recorded its reference.
type assigner struct {
	pool   cluster.Pool
	req    Request
	plan   Plan
	cursor int
}

// Assign computes the complete assignment for req over pool. reg may
// be nil; when set, counters for runs assigned, nodes consumed and
// shared nodes are registered there.
//
// The walk is inherently sequential: a run's shared-block address
// depends on its position within its batch, so runs are processed
// strictly in order.
func Assign(pool cluster.Pool, req Request, plan Plan, reg metrics.Registry) (Assignment, error) {
	a := &assigner{pool: pool, req: req, plan: plan, cursor: 1}

	asn := Assignment{}
	for idx := 1; idx <= req.NumRuns; idx++ {
		ra, err := a.assignRun(idx)
		if err != nil {
			return nil, err
		}
		asn = append(asn, ra)
	}

	if reg != nil {
		metrics.GetOrRegisterCounter("allocate.runs", reg).Inc(int64(req.NumRuns))
		metrics.GetOrRegisterCounter("allocate.nodesConsumed", reg).Inc(int64(a.cursor - 1))
		if plan.NodesPerBatch > 0 {
			batches := (req.NumRuns + plan.RunsPerBatch - 1) / plan.RunsPerBatch
			metrics.GetOrRegisterCounter("allocate.sharedNodes", reg).Inc(int64(batches * plan.NodesPerBatch))
		}
	}
	log.Debugf("assigned %d runs, cursor stopped at node %d of %d", req.NumRuns, a.cursor-1, req.TotalNodes)
	return asn, nil
}

func (a *assigner) assignRun(idx int) (RunAssignment, error) {
	ra := RunAssignment{Run: idx}

	// Full-node step: this run owns plan.FullNodesPerRun consecutive
	// nodes outright, starting at the cursor.
	for i := 0; i < a.plan.FullNodesPerRun; i++ {
		s, err := a.share(a.cursor+i, a.req.CoresPerNode)
		if err != nil {
			return ra, err
		}
		ra.Shares = append(ra.Shares, s)
	}
	a.cursor += a.plan.FullNodesPerRun

	if a.plan.NodesPerBatch == 0 {
		return ra, nil
	}

	// Leftover-sharing step. The batch's shared block sits immediately
	// after all RunsPerBatch runs' full-node blocks, so runs earlier in
	// the batch look ahead past the full nodes that later runs will
	// claim. lidx == 0 marks the run that completes the batch.
	lidx := idx % a.plan.RunsPerBatch
	remaining := (a.plan.RunsPerBatch - lidx) % a.plan.RunsPerBatch
	lstart := a.cursor + a.plan.FullNodesPerRun*remaining
	for i := 0; i < a.plan.NodesPerBatch; i++ {
		s, err := a.share(lstart+i, a.plan.SharedCoresPerRun())
		if err != nil {
			return ra, err
		}
		ra.Shares = append(ra.Shares, s)
	}
	if lidx == 0 {
		a.cursor += a.plan.NodesPerBatch
	}
	return ra, nil
}

// share claims cores cores of the node at 1-indexed position idx, or
// errors if idx is past the pool bound. The bound is the smaller of
// the TotalNodes override and the loaded pool, so a stale override
// fails loudly instead of reading past the list.
func (a *assigner) share(idx, cores int) (Share, error) {
	if idx > a.req.TotalNodes || idx > a.pool.Len() {
		return Share{}, errors.NewError(
			fmt.Errorf("node pool exhausted: need node %d but only %d of %d available",
				idx, a.pool.Len(), a.req.TotalNodes),
			errors.AllocationExhaustedExitCode)
	}
	return Share{Index: idx, Node: a.pool.At(idx), Cores: cores}, nil
}
