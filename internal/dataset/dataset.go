// ABOUTME: Reads and writes the generated JSON files (accounts, prospects, activities).
// ABOUTME: Writes are staged to temp files and renamed so a failure never leaves partial output.

package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/2389/crmseed/internal/model"
)

// File names written to the output directory.
const (
	AccountsFile   = "accounts.json"
	ProspectsFile  = "prospects.json"
	ActivitiesFile = "activities.json"
)

// ErrNotFound is returned when an input file does not exist.
var ErrNotFound = eris.New("dataset file not found")

// File is one JSON document to be written.
type File struct {
	Path  string
	Value any
}

// Encode renders v as 2-space indented JSON with a trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, eris.Wrap(err, "dataset: encode")
	}
	return buf.Bytes(), nil
}

// WriteJSON atomically replaces path with the JSON encoding of v.
func WriteJSON(path string, v any) error {
	return WriteAll(File{Path: path, Value: v})
}

// WriteAll encodes and stages every file first and renames them into place only
// once all of them were staged. Existing targets are moved aside while the
// renames run and put back if any rename fails, so either every file is
// replaced or none is.
func WriteAll(files ...File) error {
	reps := make([]*replacement, 0, len(files))
	cleanup := func() {
		for _, r := range reps {
			os.Remove(r.tmp)
		}
	}

	for _, f := range files {
		tmp, err := stage(f)
		if err != nil {
			cleanup()
			return err
		}
		reps = append(reps, &replacement{path: f.Path, tmp: tmp})
	}

	for _, r := range reps {
		if err := r.swap(); err != nil {
			rollback(reps)
			cleanup()
			return err
		}
	}

	for _, r := range reps {
		if r.backup != "" {
			if err := os.Remove(r.backup); err != nil {
				zap.L().Warn("failed to remove backup", zap.String("path", r.backup), zap.Error(err))
			}
		}
	}
	return nil
}

// replacement tracks one staged file on its way to its target path.
type replacement struct {
	path   string
	tmp    string
	backup string
	placed bool
}

// swap moves an existing regular file at the target aside, then renames the
// staged file into place.
func (r *replacement) swap() error {
	if info, err := os.Lstat(r.path); err == nil && info.Mode().IsRegular() {
		backup := strings.TrimSuffix(r.tmp, ".tmp") + ".bak"
		if err := os.Rename(r.path, backup); err != nil {
			return eris.Wrapf(err, "dataset: back up %s", r.path)
		}
		r.backup = backup
	}

	if err := os.Rename(r.tmp, r.path); err != nil {
		return eris.Wrapf(err, "dataset: replace %s", r.path)
	}
	r.placed = true
	return nil
}

// rollback undoes swaps in reverse order.
func rollback(reps []*replacement) {
	for i := len(reps) - 1; i >= 0; i-- {
		r := reps[i]
		switch {
		case r.backup != "":
			if err := os.Rename(r.backup, r.path); err != nil {
				zap.L().Error("failed to restore file", zap.String("path", r.path),
					zap.String("backup", r.backup), zap.Error(err))
			}
		case r.placed:
			os.Remove(r.path)
		}
	}
}

func stage(f File) (string, error) {
	data, err := Encode(f.Value)
	if err != nil {
		return "", eris.Wrapf(err, "dataset: %s", f.Path)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "dataset: create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return "", eris.Wrapf(err, "dataset: stage %s", f.Path)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", eris.Wrapf(err, "dataset: write %s", f.Path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", eris.Wrapf(err, "dataset: close %s", f.Path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return "", eris.Wrapf(err, "dataset: chmod %s", f.Path)
	}
	return tmp.Name(), nil
}

func readJSON[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, eris.Wrapf(ErrNotFound, "dataset: %s", path)
		}
		return out, eris.Wrapf(err, "dataset: read %s", path)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, eris.Wrapf(err, "dataset: decode %s", path)
	}
	return out, nil
}

// ReadAccounts reads accounts.json. A missing file points at the accounts
// command, which is the only thing that creates it.
func ReadAccounts(path string) ([]model.Account, error) {
	accounts, err := readJSON[[]model.Account](path)
	if eris.Is(err, ErrNotFound) {
		return nil, eris.Wrap(err, "run 'crmseed accounts' first")
	}
	return accounts, err
}

// ReadProspects reads prospects.json.
func ReadProspects(path string) ([]model.Prospect, error) {
	return readJSON[[]model.Prospect](path)
}

// ReadActivities reads activities.json.
func ReadActivities(path string) ([]model.Activity, error) {
	return readJSON[[]model.Activity](path)
}

// Load reads all three files from dir.
func Load(dir string) (*model.Dataset, error) {
	accounts, err := ReadAccounts(filepath.Join(dir, AccountsFile))
	if err != nil {
		return nil, err
	}
	prospects, err := ReadProspects(filepath.Join(dir, ProspectsFile))
	if err != nil {
		return nil, err
	}
	activities, err := ReadActivities(filepath.Join(dir, ActivitiesFile))
	if err != nil {
		return nil, err
	}
	return &model.Dataset{Accounts: accounts, Prospects: prospects, Activities: activities}, nil
}
