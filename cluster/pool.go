package cluster

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Pool is the ordered set of nodes available to one allocation.
// Order is significant: the allocator consumes nodes by position,
// never by identifier lookup. A Pool is never mutated after load.
type Pool []Node

// ReadPool reads a newline-delimited list of node identifiers,
// one per line, preserving order. Blank lines are skipped.
func ReadPool(r io.Reader) (Pool, error) {
	pool := Pool{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		pool = append(pool, NewIdNode(id))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading node pool")
	}
	return pool, nil
}

// LoadPoolFile reads a node pool from the file at path.
func LoadPoolFile(path string) (Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening node pool %s", path)
	}
	defer f.Close()
	return ReadPool(f)
}

// At returns the node at 1-indexed position idx.
// Callers must bounds-check against Len first.
func (p Pool) At(idx int) Node {
	return p[idx-1]
}

func (p Pool) Len() int {
	return len(p)
}
