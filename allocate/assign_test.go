package allocate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/nodecarve/nodecarve/cluster"
	"github.com/nodecarve/nodecarve/common/errors"
)

func mustResolve(t *testing.T, req Request, poolLen int) Request {
	t.Helper()
	resolved, err := req.Resolve(poolLen)
	if err != nil {
		t.Fatalf("unexpected error resolving request: %v", err)
	}
	return resolved
}

func renderRun(ra RunAssignment) string {
	parts := []string{}
	for _, s := range ra.Shares {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

// The canonical sharing scenario: 4 runs of 10 cores on 10 4-core
// nodes. Each run takes 2 full nodes plus 2 cores of a node shared
// between pairs of runs, consuming the pool exactly.
func Test_Assign_SharedPairs(t *testing.T) {
	pool := cluster.Pool{}
	for i := 1; i <= 10; i++ {
		pool = append(pool, cluster.NewIdNode(fmt.Sprintf("n%d", i)))
	}
	req := mustResolve(t, Request{CoresPerRun: 10, CoresPerNode: 4, NumRuns: 4}, pool.Len())
	plan := MakePlan(req)

	if plan.FullNodesPerRun != 2 || plan.LeftoverCores != 2 {
		t.Fatalf("expected 2 full nodes and 2 leftover cores, got %v", spew.Sdump(plan))
	}
	if plan.NodesPerBatch != 1 || plan.RunsPerBatch != 2 {
		t.Fatalf("expected (p=1, q=2), got %v", spew.Sdump(plan.Fraction))
	}
	if !Fills(req) {
		t.Fatal("expected demand to fill the pool exactly")
	}

	asn, err := Assign(pool, req, plan, nil)
	if err != nil {
		t.Fatalf("unexpected error assigning: %v", err)
	}

	expected := []string{
		"n1:4, n2:4, n5:2",
		"n3:4, n4:4, n5:2",
		"n6:4, n7:4, n10:2",
		"n8:4, n9:4, n10:2",
	}
	for i, want := range expected {
		if got := renderRun(asn[i]); got != want {
			t.Errorf("run %d: expected %q, got %q\nfull assignment: %s",
				i+1, want, got, spew.Sdump(asn))
		}
	}

	// Every node consumed, and consumed exactly.
	perNode := map[int]int{}
	for _, ra := range asn {
		for _, s := range ra.Shares {
			perNode[s.Index] += s.Cores
		}
	}
	for i := 1; i <= 10; i++ {
		if perNode[i] != 4 {
			t.Errorf("node %d: expected 4 cores consumed, got %d", i, perNode[i])
		}
	}
}

func Test_Assign_NoLeftover(t *testing.T) {
	pool := cluster.Pool(cluster.NewIdNodes(6))
	req := mustResolve(t, Request{CoresPerRun: 8, CoresPerNode: 4, NumRuns: 3}, pool.Len())
	plan := MakePlan(req)

	asn, err := Assign(pool, req, plan, nil)
	if err != nil {
		t.Fatalf("unexpected error assigning: %v", err)
	}
	expected := []string{
		"node1:4, node2:4",
		"node3:4, node4:4",
		"node5:4, node6:4",
	}
	for i, want := range expected {
		if got := renderRun(asn[i]); got != want {
			t.Errorf("run %d: expected %q, got %q", i+1, want, got)
		}
	}
}

// Runs smaller than a node: 4 runs of 1 core on 4-core nodes share
// nodes four ways, no full-node step at all.
func Test_Assign_SubNodeRuns(t *testing.T) {
	pool := cluster.Pool(cluster.NewIdNodes(1))
	req := mustResolve(t, Request{CoresPerRun: 1, CoresPerNode: 4, NumRuns: 4}, pool.Len())
	plan := MakePlan(req)

	if plan.FullNodesPerRun != 0 || plan.NodesPerBatch != 1 || plan.RunsPerBatch != 4 {
		t.Fatalf("unexpected plan: %s", spew.Sdump(plan))
	}
	asn, err := Assign(pool, req, plan, nil)
	if err != nil {
		t.Fatalf("unexpected error assigning: %v", err)
	}
	for i := 0; i < 4; i++ {
		if got := renderRun(asn[i]); got != "node1:1" {
			t.Errorf("run %d: expected node1:1, got %q", i+1, got)
		}
	}
}

// A trailing incomplete batch still reserves its complete shared
// block, leaving it partially referenced. 3 runs of 10 cores on
// 4-core nodes: the second batch has only run3, which must address
// node10 as if run4 existed.
func Test_Assign_PartialTrailingBatch(t *testing.T) {
	pool := cluster.Pool(cluster.NewIdNodes(10))
	req := mustResolve(t, Request{CoresPerRun: 10, CoresPerNode: 4, NumRuns: 3}, pool.Len())
	plan := MakePlan(req)

	if plan.NodesNeeded(req.NumRuns) != 10 {
		t.Fatalf("expected a 10-node footprint for 3 runs, got %d", plan.NodesNeeded(req.NumRuns))
	}

	asn, err := Assign(pool, req, plan, nil)
	if err != nil {
		t.Fatalf("unexpected error assigning: %v", err)
	}
	expected := []string{
		"node1:4, node2:4, node5:2",
		"node3:4, node4:4, node5:2",
		"node6:4, node7:4, node10:2",
	}
	for i, want := range expected {
		if got := renderRun(asn[i]); got != want {
			t.Errorf("run %d: expected %q, got %q", i+1, want, got)
		}
	}

	// node10 is under-filled: 2 of 4 cores claimed, the rest reserved
	// for a batch that never completes.
	total := 0
	for _, ra := range asn {
		for _, s := range ra.Shares {
			if s.Index == 10 {
				total += s.Cores
			}
		}
	}
	if total != 2 {
		t.Errorf("expected node10 to hold 2 cores, got %d", total)
	}
}

func Test_Assign_Exhaustion(t *testing.T) {
	// 9 nodes cannot place 3 runs of 10 cores even though capacity
	// arithmetic passes (30 <= 36): run3's shared block lives at
	// node 10.
	pool := cluster.Pool(cluster.NewIdNodes(9))
	req := mustResolve(t, Request{CoresPerRun: 10, CoresPerNode: 4, NumRuns: 3}, pool.Len())
	plan := MakePlan(req)

	_, err := Assign(pool, req, plan, nil)
	if err == nil {
		t.Fatal("expected exhaustion error on a 9-node pool")
	}
	if code := errors.CodeOf(err); code != errors.AllocationExhaustedExitCode {
		t.Errorf("expected AllocationExhaustedExitCode, got %d", code)
	}
}

func Test_Assign_UnderstatedOverride(t *testing.T) {
	// The pool has plenty of nodes but the override caps it below
	// what the walk needs.
	pool := cluster.Pool(cluster.NewIdNodes(20))
	req := mustResolve(t, Request{CoresPerRun: 10, CoresPerNode: 4, NumRuns: 4, TotalNodes: 8}, pool.Len())
	plan := MakePlan(req)

	_, err := Assign(pool, req, plan, nil)
	if err == nil {
		t.Fatal("expected exhaustion error with total nodes capped at 8")
	}
	if code := errors.CodeOf(err); code != errors.AllocationExhaustedExitCode {
		t.Errorf("expected AllocationExhaustedExitCode, got %d", code)
	}
}

func Test_RequestResolve(t *testing.T) {
	if _, err := (Request{CoresPerRun: 0, CoresPerNode: 4, NumRuns: 1}).Resolve(4); err == nil {
		t.Error("expected error for zero cores per run")
	}
	if _, err := (Request{CoresPerRun: 4, CoresPerNode: 0, NumRuns: 1}).Resolve(4); err == nil {
		t.Error("expected error for zero cores per node")
	}
	if _, err := (Request{CoresPerRun: 4, CoresPerNode: 4, NumRuns: 0}).Resolve(4); err == nil {
		t.Error("expected error for zero runs")
	}
	if _, err := (Request{CoresPerRun: 4, CoresPerNode: 4, NumRuns: 1}).Resolve(0); err == nil {
		t.Error("expected error for an empty pool with no override")
	}
	req, err := (Request{CoresPerRun: 4, CoresPerNode: 4, NumRuns: 1}).Resolve(7)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if req.TotalNodes != 7 {
		t.Errorf("expected TotalNodes to default to pool length 7, got %d", req.TotalNodes)
	}
}
