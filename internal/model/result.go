package model

import "strings"

// ResultRecord is one exercise attempt by one entry, parsed from a single
// result file.
type ResultRecord struct {
	Testcase string `json:"testcase"`
	// Language is the track the exercise belongs to. Result files may carry
	// it explicitly; older files omit it and the loader derives it from the
	// file's position in the directory tree.
	Language string `json:"language,omitempty"`
	// TestsOutcomes holds the pass/fail outcome of each successive test
	// attempt. The last element is authoritative.
	TestsOutcomes []bool `json:"tests_outcomes"`
}

// Solved reports whether the final test attempt passed.
func (r ResultRecord) Solved() bool {
	n := len(r.TestsOutcomes)
	return n > 0 && r.TestsOutcomes[n-1]
}

// Key returns the exercise identity this record belongs to.
func (r ResultRecord) Key() ExerciseKey {
	return ExerciseKey{Language: r.Language, Testcase: r.Testcase}
}

// ExerciseKey is the composite language/testcase identity used to join
// records across entries. It is globally unique within one analysis run.
type ExerciseKey struct {
	Language string
	Testcase string
}

func (k ExerciseKey) String() string {
	return k.Language + "/" + k.Testcase
}

// DisplayName returns the key rendered for humans: any "exercises/" path
// segment is stripped and a duplicated leading language segment is
// collapsed, so python/exercises/python/two-fer renders as python/two-fer.
func (k ExerciseKey) DisplayName() string {
	name := strings.ReplaceAll(k.String(), "exercises/", "")

	duplicated := k.Language + "/" + k.Language + "/"
	if strings.HasPrefix(name, duplicated) {
		name = name[len(k.Language)+1:]
	}

	return name
}

// SolutionIndex maps each exercise to the labels of the entries that solved
// it. A key present with an empty set means the exercise was never solved.
type SolutionIndex map[ExerciseKey][]string
