// Package cli implements the nodecarve command line: a root command
// with gen (write machine files) and plan (dry-run summary)
// subcommands. Commands are structs that register their own flags and
// get invoked through a thin RunE wrapper, so flag state stays scoped
// to each command.
package cli

import (
	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nodecarve/nodecarve/common/log/hooks"
)

type CLI struct {
	rootCmd  *cobra.Command
	logLevel string
	allocId  string
}

func New() *CLI {
	c := &CLI{}
	c.rootCmd = &cobra.Command{
		Use:               "nodecarve",
		Short:             "nodecarve partitions a fixed node pool into per-run machine files",
		PersistentPreRunE: c.init,
		Run:               func(*cobra.Command, []string) {},
	}
	c.rootCmd.PersistentFlags().StringVar(&c.logLevel, "log_level", "info", "Log everything at this level and above (error|info|debug)")

	c.addCmd(&genCmd{})
	c.addCmd(&planCmd{})
	return c
}

func (c *CLI) Exec() error {
	return c.rootCmd.Execute()
}

// Can only be called from cobra command run or hook
func (c *CLI) init(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		log.Error(err)
		return err
	}
	log.SetLevel(level)
	log.AddHook(hooks.NewContextHook())

	if u, err := uuid.NewV4(); err == nil {
		c.allocId = u.String()
	}
	return nil
}

type cmd interface {
	register() *cobra.Command
	run(c *CLI, cmd *cobra.Command, args []string) error
}

func (c *CLI) addCmd(sub cmd) {
	cobraCmd := sub.register()
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		return sub.run(c, innerCmd, args)
	}
	c.rootCmd.AddCommand(cobraCmd)
}
