package domain

import (
	"context"
	"fmt"
	"log/slog"

	"solvestats.dev/pkg/solvestats/internal/adapter"
	"solvestats.dev/pkg/solvestats/internal/controller"
	m "solvestats.dev/pkg/solvestats/internal/model"
	pkg "solvestats.dev/pkg/solvestats/pkg"
)

// AnalyzeArgs holds the caller-facing knobs of one analysis run.
type AnalyzeArgs struct {
	// Dirs are explicit entry directories; empty means "use the
	// leaderboard manifest".
	Dirs []m.Path
	// TopN caps the ranked entries when positive.
	TopN int
}

// Workflow runs the full pipeline: select entries, load and spill their
// records, aggregate, and hand the report to the UI.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
}

type workflow struct {
	adapter.LeaderboardStore
	adapter.ResultFSAdapter
	controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters and UI.
func NewWorkflow(
	leaderboard adapter.LeaderboardStore,
	results adapter.ResultFSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		LeaderboardStore: leaderboard,
		ResultFSAdapter:  results,
		UI:               ui,
	}
}

// Analyze implements Workflow. The pipeline is strictly sequential:
// selection, spill, aggregation, report.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	selector := &Selector{Leaderboard: w.LeaderboardStore, Results: w.ResultFSAdapter}

	loaded, diags, err := selector.Select(args.Dirs, args.TopN)
	if err != nil {
		slog.Error("entry selection failed", "error", err)
		return fmt.Errorf("select entries: %w", err)
	}

	slog.Info("entries selected", "count", len(loaded), "warnings", len(diags))

	spill, err := pkg.NewFileSpill[AttributedRecord]()
	if err != nil {
		return fmt.Errorf("create record spill: %w", err)
	}

	defer func() { _ = spill.Close() }()

	labels := make([]string, 0, len(loaded))

	for _, entry := range loaded {
		labels = append(labels, entry.Entry.Label)

		attributed := make([]AttributedRecord, 0, len(entry.Records))
		for _, record := range entry.Records {
			attributed = append(attributed, AttributedRecord{
				Label:  entry.Entry.Label,
				Record: record,
			})
		}

		if err := spill.AppendBatch(attributed); err != nil {
			return fmt.Errorf("spill records for %s: %w", entry.Entry.Dir, err)
		}
	}

	report, err := Aggregate(spill, labels)
	if err != nil {
		return fmt.Errorf("aggregate results: %w", err)
	}

	slog.Info("aggregation complete",
		"exercises", report.Summary.TotalExercises,
		"entries", report.Summary.TotalEntries,
	)

	if err := w.DisplayDiagnostics(diags); err != nil {
		return err
	}

	return w.DisplayReport(report)
}
