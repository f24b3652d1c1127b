package conflicts

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// document is the on-disk shape of the ledger.
type document struct {
	Entries []Entry `yaml:"entries"`
}

// NewFileLedger creates a conflict ledger backed by a YAML file at the
// given path. Pending entries load on creation; a missing file starts
// empty. Every Record and Resolve rewrites the file, so conflicts
// detected by one process stay pending for the next.
func NewFileLedger(path string) (*Ledger, error) {
	l := &Ledger{
		path: path,
		now:  time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	l.entries = doc.Entries
	return l, nil
}

// persistLocked writes the ledger to disk. In-memory ledgers are a
// no-op. The caller holds l.mu. The write goes through a temp file and
// rename so a crash mid-write never corrupts the ledger.
func (l *Ledger) persistLocked() error {
	if l.path == "" {
		return nil
	}

	data, err := yaml.Marshal(document{Entries: l.entries})
	if err != nil {
		return errors.WrapParse("yaml", l.path, err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".conflicts-*.yaml")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, l.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", l.path, err)
	}
	return nil
}
