package machinefile

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nodecarve/nodecarve/allocate"
	"github.com/nodecarve/nodecarve/common/errors"
)

// Render returns the file body for one run: full-node shares first,
// then the leftover share, in assignment order.
func Render(ra allocate.RunAssignment) string {
	var b strings.Builder
	for _, s := range ra.Shares {
		fmt.Fprintf(&b, "%s:%d\n", s.Node.Id(), s.Cores)
	}
	return b.String()
}

// WriteAll writes one machine file per run. Each file is staged to a
// temporary sibling and renamed into place once its content is fully
// written, so a failure mid-run never leaves a truncated file. Files
// committed before a later run's failure are left on disk.
func WriteAll(asn allocate.Assignment, tmpl Template) error {
	for _, ra := range asn {
		name := tmpl.Name(ra.Run)
		if err := writeOne(name, Render(ra)); err != nil {
			return err
		}
		log.Debugf("wrote %s (%d shares)", name, len(ra.Shares))
	}
	return nil
}

func writeOne(name, content string) error {
	dir := filepath.Dir(name)
	tmp, err := ioutil.TempFile(dir, filepath.Base(name)+".tmp")
	if err != nil {
		return errors.NewError(
			fmt.Errorf("staging %s: %v", name, err), errors.OutputWriteFailureExitCode)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return errors.NewError(
			fmt.Errorf("writing %s: %v", name, err), errors.OutputWriteFailureExitCode)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewError(
			fmt.Errorf("closing %s: %v", name, err), errors.OutputWriteFailureExitCode)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return errors.NewError(
			fmt.Errorf("committing %s: %v", name, err), errors.OutputWriteFailureExitCode)
	}
	return nil
}
