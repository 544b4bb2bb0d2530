// Package cmd is the top-level driver package for the compilerpaths CLI: it
// wires command-line arguments and the project file into the resolver and
// renders the results.
package cmd

import (
	"github.com/spf13/cobra"

	"compilerpaths/report"
	"compilerpaths/toolchain"
	"compilerpaths/util"
	"compilerpaths/wintool"
)

var (
	projectDir string
	logLevel   string
)

// The log level names accepted by the --loglevel flag, in increasing order
// of verbosity.
var logLevelNames = []string{"silent", "error", "warn", "verbose"}

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		report.ReportFatal("%s", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "compilerpaths",
		Short:         "Locate the MSVC compiler, include, and library paths for a target platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			initLogLevel()
		},
	}

	cmd.PersistentFlags().StringVar(&projectDir, "project", ".", "Path to the project directory")
	cmd.PersistentFlags().StringVar(&logLevel, "loglevel", "verbose", "Log level: silent, error, warn, or verbose")

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initLogLevel applies the --loglevel flag to the global reporter.
func initLogLevel() {
	if !util.Contains(logLevelNames, logLevel) {
		report.ReportFatal("invalid log level `%s`", logLevel)
	}

	switch logLevel {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	case "warn":
		report.InitReporter(report.LogLevelWarn)
	default:
		report.InitReporter(report.LogLevelVerbose)
	}
}

// newCatalog builds the process-wide installation catalog backed by this
// machine's Visual Studio and Windows Kits installations.
func newCatalog() toolchain.Catalog {
	return toolchain.NewCachedCatalog(wintool.NewInstalledSource())
}
