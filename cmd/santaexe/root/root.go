package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DaanHessen/santa-exe/internal/util"
)

const Version = "1.0.0"

// app is the state shared by all subcommands, filled in before any of them run.
type app struct {
	cfg    util.Config
	logs   *logging
	closer func()
}

var state app

var rootCmd = &cobra.Command{
	Use:           "santaexe",
	Short:         "SANTA.EXE, an advent calendar in your terminal",
	Long:          "SANTA.EXE opens one door per December day. Solve the day's puzzle to give Santa his pill.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is fine
		_ = godotenv.Load()
		cfg, err := util.Load()
		if err != nil {
			return err
		}
		logs, err := newLogging(cfg)
		if err != nil {
			return err
		}
		slog.SetDefault(logs.Logger)
		state = app{cfg: cfg, logs: logs, closer: logs.Close}
		logs.Logger.Info("command started", "command", cmd.Name(), "version", Version)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if state.closer != nil {
			state.closer()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPlayCmd(),
		newStatusCmd(),
		newResetCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "santaexe: "+err.Error())
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "santaexe v%s\n", Version)
			return nil
		},
	}
}
