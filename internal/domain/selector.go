// Package domain implements the analysis pipeline: entry selection, result
// aggregation, and the workflow tying them to the adapters and the UI.
package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"solvestats.dev/pkg/solvestats/internal/adapter"
	m "solvestats.dev/pkg/solvestats/internal/model"
)

// LoadedEntry pairs a selected entry with its loaded result records.
type LoadedEntry struct {
	Entry   m.Entry
	Records []m.ResultRecord
}

// Selector builds the ordered list of entries to analyze, loading each
// entry's results in the process.
type Selector struct {
	Leaderboard adapter.LeaderboardStore
	Results     adapter.ResultFSAdapter
}

// Select resolves dirs into ranked, loaded entries. When dirs is empty the
// candidates come from the leaderboard manifest and its stored pass rates
// rank them; otherwise each dir doubles as its own label and the pass rate
// is recomputed from the loaded records. Entries whose directory is missing
// or holds no results are dropped with a diagnostic. A positive topN keeps
// only the top N entries after ranking; ties keep their original order.
func (s *Selector) Select(dirs []m.Path, topN int) ([]LoadedEntry, []m.Diagnostic, error) {
	fromLeaderboard := len(dirs) == 0

	candidates, err := s.candidates(dirs)
	if err != nil {
		return nil, nil, err
	}

	var (
		loaded []LoadedEntry
		diags  []m.Diagnostic
	)

	for _, entry := range candidates {
		records, loadDiags, err := s.Results.LoadResults(entry.Dir)
		diags = append(diags, loadDiags...)

		if errors.Is(err, adapter.ErrMissingDirectory) {
			diags = append(diags, m.Warningf("could not load results for %s", entry.Dir))
			slog.Warn("skipping entry with missing directory", "dir", entry.Dir)

			continue
		}

		if err != nil {
			return nil, diags, fmt.Errorf("load results for %s: %w", entry.Dir, err)
		}

		if len(records) == 0 {
			diags = append(diags, m.Warningf("no results found for %s", entry.Dir))
			continue
		}

		if !fromLeaderboard {
			entry.PassRate = passRate(records)
		}

		loaded = append(loaded, LoadedEntry{Entry: entry, Records: records})
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].Entry.PassRate > loaded[j].Entry.PassRate
	})

	if topN > 0 && topN < len(loaded) {
		loaded = loaded[:topN]
	}

	return loaded, diags, nil
}

func (s *Selector) candidates(dirs []m.Path) ([]m.Entry, error) {
	if len(dirs) == 0 {
		entries, err := s.Leaderboard.Entries()
		if err != nil {
			return nil, fmt.Errorf("leaderboard entries: %w", err)
		}

		return entries, nil
	}

	entries := make([]m.Entry, 0, len(dirs))
	for _, dir := range dirs {
		entries = append(entries, m.Entry{Dir: dir, Label: string(dir)})
	}

	return entries, nil
}

// passRate is the fraction of records whose final test attempt passed.
func passRate(records []m.ResultRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	solved := 0

	for _, record := range records {
		if record.Solved() {
			solved++
		}
	}

	return float64(solved) / float64(len(records))
}
