package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"compilerpaths/project"
	"compilerpaths/report"
	"compilerpaths/toolchain"
)

var (
	platformFlag         string
	toolchainVersionFlag string
	sdkVersionFlag       string
	outputJSON           bool
	outputEnv            bool
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the compiler, include, and library paths",
		RunE:  runResolve,
	}

	cmd.Flags().StringVarP(&platformFlag, "platform", "p", "", "Target platform token: x86, Win32, x64, or AnyCPU")
	cmd.Flags().StringVar(&toolchainVersionFlag, "toolchain-version", "", "Exact toolchain version to use instead of the latest")
	cmd.Flags().StringVar(&sdkVersionFlag, "sdk-version", "", "Exact Windows SDK version to use instead of the latest")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.Flags().BoolVar(&outputEnv, "env", false, "Output INCLUDE and LIB environment variable lines")
	cmd.MarkFlagsMutuallyExclusive("json", "env")

	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
	proj, err := project.Load(projectDir)
	if err != nil {
		return err
	}

	platform := override("platform", platformFlag, proj.Platform)
	if platform == "" {
		platform = "AnyCPU"
	}

	toolchainVersion := override("toolchain version", toolchainVersionFlag, proj.ToolchainVersion)
	sdkVersion := override("Windows SDK version", sdkVersionFlag, proj.SdkVersion)

	resolver := toolchain.NewResolver(newCatalog())

	res, err := resolver.Resolve(platform, toolchainVersion, sdkVersion)
	if err != nil {
		return err
	}

	report.LogVerbose("Target", platform)
	report.LogVerbose("Toolchain", res.ToolchainVersion)
	report.LogVerbose("Windows SDK", res.SdkVersion)

	return writeResolution(cmd, res)
}

// writeResolution renders a resolution in the requested output format.
func writeResolution(cmd *cobra.Command, res *toolchain.Resolution) error {
	switch {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputEnv:
		// The same composition the linker and compiler environments expect.
		fmt.Fprintf(cmd.OutOrStdout(), "INCLUDE=%s\n", strings.Join(res.IncludePaths, ";"))
		fmt.Fprintf(cmd.OutOrStdout(), "LIB=%s\n", strings.Join(res.LibraryPaths, ";"))
		fmt.Fprintln(cmd.OutOrStdout(), res.CompilerPath)
		return nil
	default:
		report.DisplayInfoMessage("Compiler", res.CompilerPath)
		for _, path := range res.IncludePaths {
			report.DisplayInfoMessage("Include", path)
		}
		for _, path := range res.LibraryPaths {
			report.DisplayInfoMessage("Library", path)
		}
		return nil
	}
}

// override returns the flag value when set, falling back to the project
// file value.  A flag that shadows a different project file value draws a
// warning so pinned defaults never lose out silently.
func override(name, flagValue, projValue string) string {
	if flagValue == "" {
		return projValue
	}

	if projValue != "" && projValue != flagValue {
		report.ReportWarning("%s `%s` overrides `%s` from the project file", name, flagValue, projValue)
	}

	return flagValue
}
