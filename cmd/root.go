// Package cmd provides the root command and CLI setup for solvestats.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"solvestats.dev/pkg/solvestats/internal/adapter"
	"solvestats.dev/pkg/solvestats/internal/controller"
	"solvestats.dev/pkg/solvestats/internal/domain"
	m "solvestats.dev/pkg/solvestats/internal/model"
)

// topNFlag caps the ranked entries when positive.
var topNFlag int

const rootLongDescription = `Solvestats aggregates per-exercise pass/fail results produced by running
multiple language models against a fixed suite of coding exercises, and
reports which exercises are reliably solved, never solved, or solved by
every model.

With no arguments the entries to analyze come from the leaderboard
manifest; pass one or more benchmark directory names to analyze those runs
instead (each directory doubles as its own label, with the pass rate
recomputed from its results).

The benchmark root and the leaderboard manifest path come from
solvestats.yaml or SOLVESTATS_* environment variables.`

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solvestats [dirs...]",
		Short: "Aggregate exercise solution statistics across benchmark runs",
		Long:  rootLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			workflow := newWorkflow(cmd)

			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Dirs: parseDirs(args),
				TopN: viper.GetInt(topNConfigKey),
			})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

// newWorkflow wires the adapters and UI for one invocation, reading the
// benchmark root and manifest path from configuration.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	leaderboard := adapter.NewLocalLeaderboardStore(m.Path(viper.GetString(leaderboardFileKey)))
	results := adapter.NewLocalResultFSAdapter(m.Path(viper.GetString(benchmarksDirKey)))
	ui := controller.NewSimpleUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(leaderboard, results, ui)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(
		&topNFlag, topNFlagName, "n",
		defaultTopN,
		"only consider the top N entries by pass rate",
	)
	bindFlagToConfig(cmd.Flags().Lookup(topNFlagName), topNConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseDirs(args []string) []m.Path {
	dirs := make([]m.Path, 0, len(args))
	for _, arg := range args {
		dirs = append(dirs, m.Path(arg))
	}

	return dirs
}
