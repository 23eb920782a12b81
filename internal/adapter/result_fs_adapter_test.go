package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "solvestats.dev/pkg/solvestats/internal/model"
)

// writeResult places a raw result file at the expected layout:
// <root>/<dir>/<lang>/exercises/practice/<exercise>/<ResultFileName>.
func writeResult(t *testing.T, root, dir, lang, exercise, content string) {
	t.Helper()

	exerciseDir := filepath.Join(root, dir, lang, "exercises", "practice", exercise)
	require.NoError(t, os.MkdirAll(exerciseDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(exerciseDir, ResultFileName), []byte(content), 0o600))
}

func TestLocalResultFSAdapter_LoadResults(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "run-a", "python", "two-fer",
		`{"testcase": "two-fer", "tests_outcomes": [false, true]}`)
	writeResult(t, root, "run-a", "go", "etl",
		`{"testcase": "etl", "tests_outcomes": [false]}`)

	records, diags, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("run-a")
	require.NoError(t, err)
	assert.Empty(t, diags)

	// WalkDir visits in lexical order, so the go track comes first.
	assert.Equal(t, []m.ResultRecord{
		{Testcase: "etl", Language: "go", TestsOutcomes: []bool{false}},
		{Testcase: "two-fer", Language: "python", TestsOutcomes: []bool{false, true}},
	}, records)
}

func TestLocalResultFSAdapter_LoadResults_ExplicitLanguageWins(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "run-a", "python", "two-fer",
		`{"testcase": "two-fer", "language": "python3", "tests_outcomes": [true]}`)

	records, _, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("run-a")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "python3", records[0].Language)
}

func TestLocalResultFSAdapter_LoadResults_MalformedFileSkipped(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "run-a", "python", "two-fer", `{not json`)
	writeResult(t, root, "run-a", "python", "etl",
		`{"testcase": "etl", "tests_outcomes": [true]}`)

	records, diags, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("run-a")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "etl", records[0].Testcase)

	require.Len(t, diags, 1)
	assert.Equal(t, m.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "failed to parse")
	assert.Contains(t, diags[0].Message, "two-fer")
}

func TestLocalResultFSAdapter_LoadResults_MissingTestcaseSkipped(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "run-a", "python", "two-fer",
		`{"tests_outcomes": [true]}`)

	records, diags, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("run-a")
	require.NoError(t, err)
	assert.Empty(t, records)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "missing testcase")
}

func TestLocalResultFSAdapter_LoadResults_MissingDirectory(t *testing.T) {
	root := t.TempDir()

	records, diags, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDirectory)
	assert.Nil(t, records)
	assert.Empty(t, diags)
}

func TestLocalResultFSAdapter_LoadResults_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "run-a"), 0o750))

	records, diags, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("run-a")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Empty(t, diags)
}

func TestLocalResultFSAdapter_LoadResults_WrongDepthIgnored(t *testing.T) {
	root := t.TempDir()
	// A result file directly under the language directory does not match the
	// expected layout and is ignored without a diagnostic.
	langDir := filepath.Join(root, "run-a", "python")
	require.NoError(t, os.MkdirAll(langDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(langDir, ResultFileName),
		[]byte(`{"testcase": "stray", "tests_outcomes": [true]}`), 0o600))

	records, diags, err := NewLocalResultFSAdapter(m.Path(root)).LoadResults("run-a")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, diags)
}
