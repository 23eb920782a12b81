package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "solvestats.dev/pkg/solvestats/internal/model"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// SimpleUI renders plain-text reports to a cobra command's stdout.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. Section titles are styled only when
// styled is true (stdout attached to a terminal); otherwise output stays
// byte-deterministic plain text.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayDiagnostics prints each collected warning on its own line.
func (s *SimpleUI) DisplayDiagnostics(diags []m.Diagnostic) error {
	for _, diag := range diags {
		if err := s.printf("%s: %s\n", diag.Severity, diag.Message); err != nil {
			return err
		}
	}

	return nil
}

// DisplayReport prints the exercise table, summary block, and distribution
// table in the fixed report order.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	if err := s.printf("\n%s\n", s.title("Exercise Solution Statistics")); err != nil {
		return err
	}

	if err := s.printf("%s", renderExerciseTable(report.Exercises)); err != nil {
		return err
	}

	summary := report.Summary
	if err := s.printf("\n%s\n", s.title("Summary")); err != nil {
		return err
	}

	if err := s.printf("Total exercises solved at least once: %d\n", summary.SolvedAtLeastOnce); err != nil {
		return err
	}

	if err := s.printf("Never solved by any model: %d\n", summary.SolvedByNone); err != nil {
		return err
	}

	if err := s.printf("Solved by all models: %d\n", summary.SolvedByAll); err != nil {
		return err
	}

	if err := s.printf("Total exercises: %d = %d (none) + %d (all) + %d (some)\n",
		summary.TotalExercises, summary.SolvedByNone, summary.SolvedByAll, summary.SolvedBySome); err != nil {
		return err
	}

	if err := s.printf("\n%s\n", s.title("Distribution of solutions")); err != nil {
		return err
	}

	return s.printf("%s", renderDistributionTable(report.Distribution, summary.TotalExercises))
}

func renderExerciseTable(stats []m.ExerciseStat) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Exercise", "Solved", "Percent"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, stat := range stats {
		table.Append([]string{
			strconv.Itoa(i + 1),
			stat.Name,
			strconv.Itoa(stat.Solved),
			fmt.Sprintf("%.1f%%", stat.Percent),
		})
	}

	table.Render()

	return buf.String()
}

func renderDistributionTable(rows []m.DistributionRow, totalExercises int) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Models", "Exercises", "Cumulative"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append([]string{
			strconv.Itoa(row.Solvers),
			strconv.Itoa(row.Exercises),
			strconv.Itoa(row.Cumulative),
		})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(totalExercises), ""})
	table.Render()

	return buf.String()
}

func (s *SimpleUI) title(text string) string {
	if s.styled {
		return titleStyle.Render(text)
	}

	return text + ":"
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
