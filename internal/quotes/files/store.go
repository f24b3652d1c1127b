// Package files provides a file-backed record store persisted as a
// single YAML document.
package files

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/ifeomasylviadike/quotevault/internal/quotes/base"
	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// document is the on-disk shape of the collection.
type document struct {
	Records []quotes.Record `yaml:"records"`
}

// store is a record store backed by a YAML file. Persistence is
// whole-collection replace-on-save.
type store struct {
	base.Collection
	path string
}

// NewStore creates a file-backed record store at the given path.
// The file does not need to exist yet; Load treats a missing file as
// an empty collection.
func NewStore(path string) quotes.Store {
	return &store{
		Collection: base.NewCollection(),
		path:       path,
	}
}

// Load reads the collection from disk.
func (s *store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.ReplaceAll(nil)
		}
		return errors.WrapIO("read", s.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.WrapParse("yaml", s.path, err)
	}
	return s.ReplaceAll(doc.Records)
}

// Save writes the collection to disk. The write goes through a temp
// file and rename so a crash mid-write never corrupts the store.
func (s *store) Save() error {
	doc := document{Records: s.List()}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapParse("yaml", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".quotes-*.yaml")
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
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}
