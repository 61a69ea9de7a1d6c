package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodecarve/nodecarve/allocate"
	"github.com/nodecarve/nodecarve/cluster"
	"github.com/nodecarve/nodecarve/common/errors"
)

type planCmd struct {
	pool         string
	coresPerRun  int
	coresPerNode int
	numRuns      int
	totalNodes   int
}

func (p *planCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "print the allocation summary without writing any files",
	}
	cmd.Flags().StringVar(&p.pool, "pool", "", "file listing node identifiers, one per line, order-significant")
	cmd.Flags().IntVar(&p.coresPerRun, "cores_per_run", 0, "cores each run requires")
	cmd.Flags().IntVar(&p.coresPerNode, "cores_per_node", 0, "cores offered by every node in the pool")
	cmd.Flags().IntVar(&p.numRuns, "num_runs", 0, "number of parallel runs")
	cmd.Flags().IntVar(&p.totalNodes, "total_nodes", 0, "override the usable pool size (default: all nodes in --pool)")
	return cmd
}

func (p *planCmd) run(c *CLI, cmd *cobra.Command, args []string) error {
	if p.coresPerRun <= 0 || p.coresPerNode <= 0 || p.numRuns <= 0 {
		return errors.NewError(
			fmt.Errorf("--cores_per_run, --cores_per_node and --num_runs are required and must be positive"),
			errors.ConfigurationFailureExitCode)
	}
	if p.pool == "" && p.totalNodes <= 0 {
		return errors.NewError(
			fmt.Errorf("either --pool or --total_nodes is required"),
			errors.ConfigurationFailureExitCode)
	}
	cmd.SilenceUsage = true

	poolLen := p.totalNodes
	if p.pool != "" {
		pool, err := cluster.LoadPoolFile(p.pool)
		if err != nil {
			return errors.NewError(err, errors.SourceUnavailableExitCode)
		}
		poolLen = pool.Len()
	}

	req, err := allocate.Request{
		CoresPerRun:  p.coresPerRun,
		CoresPerNode: p.coresPerNode,
		NumRuns:      p.numRuns,
		TotalNodes:   p.totalNodes,
	}.Resolve(poolLen)
	if err != nil {
		return errors.NewError(err, errors.ConfigurationFailureExitCode)
	}

	fmt.Print(allocate.Summarize(req, allocate.MakePlan(req)))
	return nil
}
