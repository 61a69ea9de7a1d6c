package allocate

import (
	"fmt"
	"strings"
)

// Summary holds the derived quantities of one allocation, for the
// dry-run mode. It is computed from the request and plan alone and
// never touches the pool or the filesystem.
type Summary struct {
	CoresRequested  int
	PoolCapacity    int
	TotalNodes      int
	FullNodesPerRun int
	LeftoverCores   int
	NodesPerBatch   int
	RunsPerBatch    int
	SharedPerRun    int
	NodesNeeded     int
	Fits            bool
	Fills           bool
}

// Summarize derives the dry-run summary for req and plan.
func Summarize(req Request, plan Plan) Summary {
	return Summary{
		CoresRequested:  req.CoresPerRun * req.NumRuns,
		PoolCapacity:    req.TotalNodes * req.CoresPerNode,
		TotalNodes:      req.TotalNodes,
		FullNodesPerRun: plan.FullNodesPerRun,
		LeftoverCores:   plan.LeftoverCores,
		NodesPerBatch:   plan.NodesPerBatch,
		RunsPerBatch:    plan.RunsPerBatch,
		SharedPerRun:    plan.SharedCoresPerRun(),
		NodesNeeded:     plan.NodesNeeded(req.NumRuns),
		Fits:            Fits(req),
		Fills:           Fills(req),
	}
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cores requested:     %d\n", s.CoresRequested)
	fmt.Fprintf(&b, "pool capacity:       %d (%d nodes)\n", s.PoolCapacity, s.TotalNodes)
	fmt.Fprintf(&b, "full nodes per run:  %d\n", s.FullNodesPerRun)
	fmt.Fprintf(&b, "leftover cores:      %d\n", s.LeftoverCores)
	if s.NodesPerBatch > 0 {
		fmt.Fprintf(&b, "sharing:             %d node(s) per %d-run batch, %d core(s) per run\n",
			s.NodesPerBatch, s.RunsPerBatch, s.SharedPerRun)
	} else {
		fmt.Fprintf(&b, "sharing:             none\n")
	}
	fmt.Fprintf(&b, "nodes needed:        %d\n", s.NodesNeeded)
	fmt.Fprintf(&b, "fits capacity:       %t\n", s.Fits)
	fmt.Fprintf(&b, "fills capacity:      %t\n", s.Fills)
	return b.String()
}
