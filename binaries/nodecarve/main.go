package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/nodecarve/nodecarve/cli"
	"github.com/nodecarve/nodecarve/common/errors"
)

// Command-line entry point for the machinefile allocator.
func main() {
	if err := cli.New().Exec(); err != nil {
		log.Error(err)
		os.Exit(int(errors.CodeOf(err)))
	}
}
