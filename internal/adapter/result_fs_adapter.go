package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "solvestats.dev/pkg/solvestats/internal/model"
)

// ErrMissingDirectory reports that an entry's result directory does not
// exist at all, as opposed to existing but holding no results.
var ErrMissingDirectory = errors.New("result directory does not exist")

// ResultFileName is the name of the per-exercise result file written by the
// benchmark runner.
const ResultFileName = ".benchmark.results.json"

const (
	exercisesSegment = "exercises"
	practiceSegment  = "practice"
)

// resultPathDepth is the expected number of path segments between an entry
// directory and a result file: <language>/exercises/practice/<exercise>/<file>.
// The language track is the first of those segments.
const resultPathDepth = 5

// ResultFSAdapter abstracts the benchmark output tree so the domain layer
// can be tested without touching the disk.
type ResultFSAdapter interface {
	// LoadResults returns every result record found under the entry
	// directory, plus diagnostics for files it had to skip. A missing
	// directory yields ErrMissingDirectory; a directory that exists but
	// holds no results yields an empty, non-nil slice.
	LoadResults(dir m.Path) ([]m.ResultRecord, []m.Diagnostic, error)
}

// LocalResultFSAdapter walks a benchmark output root on the local
// filesystem.
type LocalResultFSAdapter struct {
	root m.Path
}

// NewLocalResultFSAdapter constructs a LocalResultFSAdapter rooted at the
// given benchmarks directory.
func NewLocalResultFSAdapter(root m.Path) *LocalResultFSAdapter {
	return &LocalResultFSAdapter{root: root}
}

// LoadResults walks <root>/<dir> collecting one record per result file.
// Malformed files and records without a testcase are skipped with a
// diagnostic; they never abort the load.
func (a *LocalResultFSAdapter) LoadResults(dir m.Path) ([]m.ResultRecord, []m.Diagnostic, error) {
	entryDir := filepath.Join(string(a.root), string(dir))

	info, err := os.Stat(entryDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%s: %w", entryDir, ErrMissingDirectory)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", entryDir, err)
	}

	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s: %w", entryDir, ErrMissingDirectory)
	}

	records := []m.ResultRecord{}

	var diags []m.Diagnostic

	err = filepath.WalkDir(entryDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || d.Name() != ResultFileName {
			return nil
		}

		rel, relErr := filepath.Rel(entryDir, path)
		if relErr != nil {
			return relErr
		}

		segments := strings.Split(filepath.ToSlash(rel), "/")
		if len(segments) != resultPathDepth ||
			segments[1] != exercisesSegment || segments[2] != practiceSegment {
			slog.Debug("skipping result file outside expected layout", "path", path)
			return nil
		}

		record, ok := a.parseResultFile(path, &diags)
		if !ok {
			return nil
		}

		if record.Language == "" {
			record.Language = segments[0]
		}

		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, diags, fmt.Errorf("walk %s: %w", entryDir, err)
	}

	slog.Debug("loaded results", "dir", dir, "records", len(records), "skipped", len(diags))

	return records, diags, nil
}

// parseResultFile reads and decodes one result file, recording a diagnostic
// instead of failing when the file is malformed or incomplete.
func (a *LocalResultFSAdapter) parseResultFile(path string, diags *[]m.Diagnostic) (m.ResultRecord, bool) {
	var record m.ResultRecord

	raw, err := os.ReadFile(path)
	if err != nil {
		*diags = append(*diags, m.Warningf("failed to read %s: %v", path, err))
		return record, false
	}

	if err := json.Unmarshal(raw, &record); err != nil {
		*diags = append(*diags, m.Warningf("failed to parse %s: %v", path, err))
		return record, false
	}

	if record.Testcase == "" {
		*diags = append(*diags, m.Warningf("missing testcase in %s", path))
		return record, false
	}

	return record, true
}
