// Package cmd implements copper's command-line surface: a single cobra
// root command (no subcommands), matching original_source/src/cli.rs's
// flat -f/-h/-v flag set rather than the teacher's run/version subcommand
// split.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/config"
)

// Version is the interpreter's release version, reported by -v/--version.
var Version = "0.1.0"

var (
	scriptFile string
	traceFlag  bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:     "copper",
	Short:   "copper is a Scheme-dialect interpreter",
	Long:    `copper reads and evaluates programs written in a small Scheme dialect: a reader with quote/quasiquote sugar, a numeric tower spanning integers through complex numbers, and lexically-scoped closures.`,
	Version: Version,
	RunE:    runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "run the program in this file instead of starting the REPL")
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "trace special-form dispatch and procedure application to stderr")
	rootCmd.Flags().StringVar(&configPath, "config", ".copperrc.yaml", "path to an optional YAML configuration file")
	rootCmd.SetVersionTemplate("copper version {{.Version}}\n")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", configPath, err)
	}

	if scriptFile != "" {
		return runFile(cfg, scriptFile, traceFlag)
	}
	if len(args) == 1 {
		return runFile(cfg, args[0], traceFlag)
	}

	runREPL(cfg, traceFlag)
	return nil
}
