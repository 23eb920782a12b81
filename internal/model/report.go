package model

import "fmt"

// Severity classifies a diagnostic.
type Severity string

// SeverityWarning marks a recoverable problem that cost data points but did
// not stop the analysis.
const SeverityWarning Severity = "warning"

// Diagnostic is a warning collected while loading or selecting entries.
// Loaders never print; they return diagnostics and the reporter decides how
// to display them.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Warningf builds a warning-severity diagnostic.
func Warningf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// ExerciseStat holds the per-exercise solution statistics for the report.
type ExerciseStat struct {
	Key     ExerciseKey
	Name    string // normalized display name
	Solved  int    // number of entries that solved the exercise
	Percent float64
}

// Summary holds the global counts over the exercise universe.
type Summary struct {
	TotalExercises    int
	SolvedAtLeastOnce int
	SolvedByNone      int
	SolvedByAll       int
	SolvedBySome      int
	TotalEntries      int
}

// DistributionRow counts the exercises solved by exactly Solvers entries.
type DistributionRow struct {
	Solvers    int
	Exercises  int
	Cumulative int
}

// Report is the complete output of one analysis run.
type Report struct {
	Exercises    []ExerciseStat // sorted by solved count desc, then name asc
	Index        SolutionIndex
	Summary      Summary
	Distribution []DistributionRow
}
