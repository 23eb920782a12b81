package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultRecord_Solved(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []bool
		want     bool
	}{
		{"nil outcomes", nil, false},
		{"empty outcomes", []bool{}, false},
		{"single pass", []bool{true}, true},
		{"single fail", []bool{false}, false},
		{"last attempt governs", []bool{false, true, false}, false},
		{"recovered on retry", []bool{false, false, true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ResultRecord{Testcase: "two-fer", TestsOutcomes: tt.outcomes}
			assert.Equal(t, tt.want, record.Solved())
		})
	}
}

func TestExerciseKey_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		key  ExerciseKey
		want string
	}{
		{
			"plain key",
			ExerciseKey{Language: "python", Testcase: "two-fer"},
			"python/two-fer",
		},
		{
			"exercises prefix stripped and duplicate collapsed",
			ExerciseKey{Language: "python", Testcase: "exercises/python/two-fer"},
			"python/two-fer",
		},
		{
			"duplicate language collapsed",
			ExerciseKey{Language: "javascript", Testcase: "javascript/etl"},
			"javascript/etl",
		},
		{
			"unrelated nested segment kept",
			ExerciseKey{Language: "go", Testcase: "practice/bank-account"},
			"go/practice/bank-account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.DisplayName())
		})
	}
}

func TestResultRecord_Key(t *testing.T) {
	record := ResultRecord{Testcase: "etl", Language: "rust"}
	assert.Equal(t, ExerciseKey{Language: "rust", Testcase: "etl"}, record.Key())
	assert.Equal(t, "rust/etl", record.Key().String())
}
