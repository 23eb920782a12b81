// Package adapter contains infrastructure adapters for the solvestats CLI.
package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "solvestats.dev/pkg/solvestats/internal/model"
)

// LeaderboardStore abstracts the leaderboard manifest so the domain layer
// can be tested without a manifest file on disk.
type LeaderboardStore interface {
	// Entries returns the manifest items in file order. A missing or
	// unreadable manifest is an error; the caller decides whether that is
	// fatal.
	Entries() ([]m.Entry, error)
}

// leaderboardItem mirrors one manifest record. Extra fields are ignored.
type leaderboardItem struct {
	Dirname  string  `yaml:"dirname"`
	Model    string  `yaml:"model"`
	PassRate float64 `yaml:"pass_rate_2"`
}

// LocalLeaderboardStore reads the leaderboard manifest from a YAML file.
type LocalLeaderboardStore struct {
	path m.Path
}

// NewLocalLeaderboardStore constructs a LocalLeaderboardStore for the given
// manifest path.
func NewLocalLeaderboardStore(path m.Path) *LocalLeaderboardStore {
	return &LocalLeaderboardStore{path: path}
}

// Entries loads and parses the manifest.
func (s *LocalLeaderboardStore) Entries() ([]m.Entry, error) {
	raw, err := os.ReadFile(string(s.path))
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %s: %w", s.path, err)
	}

	var items []leaderboardItem
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse leaderboard %s: %w", s.path, err)
	}

	entries := make([]m.Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, m.Entry{
			Dir:      m.Path(item.Dirname),
			Label:    item.Model,
			PassRate: item.PassRate,
		})
	}

	return entries, nil
}
