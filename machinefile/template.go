// Package machinefile renders allocation results to per-run machine
// files: one line per node share, "<nodeIdentifier>:<coreCount>".
package machinefile

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const DefaultPattern = "machinefile_%d"

// Template derives per-run output names from a pattern holding a
// single %d verb for the 1-indexed run number.
type Template struct {
	pattern string
}

func NewTemplate(pattern string) (Template, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if strings.Count(pattern, "%d") != 1 {
		return Template{}, errors.Errorf("output pattern %q must contain exactly one %%d", pattern)
	}
	return Template{pattern: pattern}, nil
}

// Name returns the output name for the given run number.
func (t Template) Name(run int) string {
	return fmt.Sprintf(t.pattern, run)
}

// Names returns the output names for runs 1..numRuns in order.
func (t Template) Names(numRuns int) []string {
	names := make([]string, 0, numRuns)
	for i := 1; i <= numRuns; i++ {
		names = append(names, t.Name(i))
	}
	return names
}
