package cli

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nodecarve/nodecarve/allocate"
	"github.com/nodecarve/nodecarve/cluster"
	"github.com/nodecarve/nodecarve/common/errors"
	"github.com/nodecarve/nodecarve/machinefile"
)

type genCmd struct {
	pool         string
	out          string
	coresPerRun  int
	coresPerNode int
	numRuns      int
	totalNodes   int
	checkFit     bool
	requireFill  bool
	noClobber    bool
	dryRun       bool
}

func (g *genCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "compute the node assignment and write one machine file per run",
	}
	cmd.Flags().StringVar(&g.pool, "pool", "", "file listing node identifiers, one per line, order-significant")
	cmd.Flags().StringVar(&g.out, "out", machinefile.DefaultPattern, "output name pattern, %d is the run number")
	cmd.Flags().IntVar(&g.coresPerRun, "cores_per_run", 0, "cores each run requires")
	cmd.Flags().IntVar(&g.coresPerNode, "cores_per_node", 0, "cores offered by every node in the pool")
	cmd.Flags().IntVar(&g.numRuns, "num_runs", 0, "number of parallel runs")
	cmd.Flags().IntVar(&g.totalNodes, "total_nodes", 0, "override the usable pool size (default: all nodes in --pool)")
	cmd.Flags().BoolVar(&g.checkFit, "check_fit", false, "abort if demand exceeds pool capacity")
	cmd.Flags().BoolVar(&g.requireFill, "require_fill", false, "abort unless demand equals pool capacity exactly")
	cmd.Flags().BoolVar(&g.noClobber, "no_clobber", false, "abort if any output file already exists")
	cmd.Flags().BoolVar(&g.dryRun, "dry_run", false, "print the allocation summary, write nothing")
	return cmd
}

func (g *genCmd) run(c *CLI, cmd *cobra.Command, args []string) error {
	logger := log.WithField("allocId", c.allocId)

	if g.pool == "" {
		return errors.NewError(fmt.Errorf("--pool is required"), errors.ConfigurationFailureExitCode)
	}
	if g.coresPerRun <= 0 || g.coresPerNode <= 0 || g.numRuns <= 0 {
		return errors.NewError(
			fmt.Errorf("--cores_per_run, --cores_per_node and --num_runs are required and must be positive"),
			errors.ConfigurationFailureExitCode)
	}
	tmpl, err := machinefile.NewTemplate(g.out)
	if err != nil {
		return errors.NewError(err, errors.ConfigurationFailureExitCode)
	}

	// Structural errors above get cobra's usage reminder; everything
	// past this point is an operational failure.
	cmd.SilenceUsage = true

	pool, err := cluster.LoadPoolFile(g.pool)
	if err != nil {
		return errors.NewError(err, errors.SourceUnavailableExitCode)
	}

	req, err := allocate.Request{
		CoresPerRun:  g.coresPerRun,
		CoresPerNode: g.coresPerNode,
		NumRuns:      g.numRuns,
		TotalNodes:   g.totalNodes,
	}.Resolve(pool.Len())
	if err != nil {
		return errors.NewError(err, errors.ConfigurationFailureExitCode)
	}
	plan := allocate.MakePlan(req)

	if g.checkFit && !allocate.Fits(req) {
		return errors.NewError(
			fmt.Errorf("demand of %d cores exceeds pool capacity of %d",
				req.CoresPerRun*req.NumRuns, req.TotalNodes*req.CoresPerNode),
			errors.CapacityCheckFailureExitCode)
	}
	if g.requireFill && !allocate.Fills(req) {
		return errors.NewError(
			fmt.Errorf("demand of %d cores does not fill pool capacity of %d exactly",
				req.CoresPerRun*req.NumRuns, req.TotalNodes*req.CoresPerNode),
			errors.CapacityCheckFailureExitCode)
	}
	if g.noClobber {
		if safe, name := allocate.OverwriteSafe(allocate.OsStatter(), tmpl.Names(req.NumRuns)); !safe {
			return errors.NewError(
				fmt.Errorf("output file %s already exists", name),
				errors.OverwriteConflictExitCode)
		}
	}

	if g.dryRun {
		fmt.Print(allocate.Summarize(req, plan))
		return nil
	}

	reg := metrics.NewRegistry()
	asn, err := allocate.Assign(pool, req, plan, reg)
	if err != nil {
		return err
	}
	if err := machinefile.WriteAll(asn, tmpl); err != nil {
		return err
	}
	reg.Each(func(name string, m interface{}) {
		if counter, ok := m.(metrics.Counter); ok {
			logger.Debugf("%s: %d", name, counter.Count())
		}
	})
	logger.Infof("wrote %d machine files (%s .. %s)", req.NumRuns, tmpl.Name(1), tmpl.Name(req.NumRuns))
	return nil
}
