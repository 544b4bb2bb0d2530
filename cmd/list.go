package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"compilerpaths/toolchain"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every discovered toolchain and Windows SDK installation",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	catalog := newCatalog()

	toolchains, err := catalog.Toolchains()
	if err != nil {
		return err
	}

	sdks, err := catalog.Sdks()
	if err != nil {
		return err
	}

	writeInstalls(cmd.OutOrStdout(), toolchains, sdks)
	return nil
}

// writeInstalls renders both catalog collections with their versions and
// roots, in the catalogs' descending order.
func writeInstalls(out io.Writer, toolchains []toolchain.ToolchainInstall, sdks []toolchain.SdkInstall) {
	fmt.Fprintln(out, "Toolchains:")
	for _, tc := range toolchains {
		fmt.Fprintf(out, "  %-18s %s\n", tc.Version, tc.Root)
	}

	fmt.Fprintln(out, "Windows SDKs:")
	for _, sdk := range sdks {
		fmt.Fprintf(out, "  %s\n", sdk.Version)
		for _, root := range sdk.IncludeRoots {
			fmt.Fprintf(out, "    include %s\n", root)
		}
		for _, root := range sdk.LibraryRoots {
			fmt.Fprintf(out, "    lib     %s\n", root)
		}
	}
}
