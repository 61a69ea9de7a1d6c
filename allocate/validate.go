package allocate

import (
	"os"
)

// Statter is the filesystem probe used by OverwriteSafe. os.Stat in
// production, mocked in tests.
type Statter interface {
	Stat(name string) (os.FileInfo, error)
}

type osStatter struct{}

func (osStatter) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// OsStatter probes the real filesystem.
func OsStatter() Statter { return osStatter{} }

// Fits reports whether the pool has at least as much capacity as the
// runs demand.
func Fits(req Request) bool {
	return req.CoresPerRun*req.NumRuns <= req.TotalNodes*req.CoresPerNode
}

// Fills reports whether demand consumes the pool's capacity exactly.
func Fills(req Request) bool {
	return req.CoresPerRun*req.NumRuns == req.TotalNodes*req.CoresPerNode
}

// OverwriteSafe reports whether none of the target names exist yet.
// The first existing name, if any, is returned for diagnostics.
func OverwriteSafe(st Statter, names []string) (bool, string) {
	for _, name := range names {
		if _, err := st.Stat(name); err == nil {
			return false, name
		}
	}
	return true, ""
}
