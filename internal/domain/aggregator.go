package domain

import (
	"slices"
	"sort"

	m "solvestats.dev/pkg/solvestats/internal/model"
	pkg "solvestats.dev/pkg/solvestats/pkg"
)

// AttributedRecord tags a result record with the label of the entry that
// produced it, so records from every entry can share one spill.
type AttributedRecord struct {
	Label  string
	Record m.ResultRecord
}

// Aggregate joins the spilled records against the exercise universe and
// computes the solution index, per-exercise statistics, summary counts, and
// the solver distribution. labels is the full list of selected entry
// labels; it sets the denominator for percentages and the distribution
// width.
func Aggregate(records pkg.FileSpill[AttributedRecord], labels []string) (m.Report, error) {
	universe := map[m.ExerciseKey]struct{}{}

	err := records.Range(func(_ uint64, item AttributedRecord) error {
		universe[item.Record.Key()] = struct{}{}
		return nil
	})
	if err != nil {
		return m.Report{}, err
	}

	index := make(m.SolutionIndex, len(universe))
	for key := range universe {
		index[key] = nil
	}

	err = records.Range(func(_ uint64, item AttributedRecord) error {
		if !item.Record.Solved() {
			return nil
		}

		key := item.Record.Key()

		// One verdict per entry per exercise, even if a tree somehow holds
		// duplicate records.
		if !slices.Contains(index[key], item.Label) {
			index[key] = append(index[key], item.Label)
		}

		return nil
	})
	if err != nil {
		return m.Report{}, err
	}

	totalEntries := len(labels)
	stats := buildExerciseStats(index, totalEntries)
	summary := buildSummary(stats, totalEntries)

	return m.Report{
		Exercises:    stats,
		Index:        index,
		Summary:      summary,
		Distribution: buildDistribution(stats, totalEntries),
	}, nil
}

func buildExerciseStats(index m.SolutionIndex, totalEntries int) []m.ExerciseStat {
	stats := make([]m.ExerciseStat, 0, len(index))

	for key, solvers := range index {
		percent := 0.0
		if totalEntries > 0 {
			percent = float64(len(solvers)) / float64(totalEntries) * 100
		}

		stats = append(stats, m.ExerciseStat{
			Key:     key,
			Name:    key.DisplayName(),
			Solved:  len(solvers),
			Percent: percent,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Solved != stats[j].Solved {
			return stats[i].Solved > stats[j].Solved
		}

		if stats[i].Name != stats[j].Name {
			return stats[i].Name < stats[j].Name
		}

		return stats[i].Key.String() < stats[j].Key.String()
	})

	return stats
}

func buildSummary(stats []m.ExerciseStat, totalEntries int) m.Summary {
	summary := m.Summary{
		TotalExercises: len(stats),
		TotalEntries:   totalEntries,
	}

	for _, stat := range stats {
		if stat.Solved > 0 {
			summary.SolvedAtLeastOnce++
		}

		switch {
		case stat.Solved == 0:
			summary.SolvedByNone++
		case stat.Solved == totalEntries:
			summary.SolvedByAll++
		}
	}

	summary.SolvedBySome = summary.TotalExercises - summary.SolvedByNone - summary.SolvedByAll

	return summary
}

func buildDistribution(stats []m.ExerciseStat, totalEntries int) []m.DistributionRow {
	counts := make([]int, totalEntries+1)
	for _, stat := range stats {
		counts[stat.Solved]++
	}

	rows := make([]m.DistributionRow, 0, len(counts))
	cumulative := 0

	for solvers, count := range counts {
		cumulative += count
		rows = append(rows, m.DistributionRow{
			Solvers:    solvers,
			Exercises:  count,
			Cumulative: cumulative,
		})
	}

	return rows
}
