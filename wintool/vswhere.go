package wintool

import (
	"os"
	"path/filepath"
	"strings"

	"compilerpaths/toolchain"
)

// vsInstance is one Visual Studio installation as reported by vswhere.
type vsInstance struct {
	// The path to the installation.
	InstallPath string

	// The installation version string.
	Version string
}

// vswhereArgs are the arguments used to enumerate every installed VS
// product that carries the C++ build tools.
var vswhereArgs = []string{
	"-all",
	"-products", "*",
	"-requires", "Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
	"-format", "text",
	"-nologo",
}

// parseVSWhereOutput parses vswhere's text output format: one `key: value`
// line per property with instances separated by blank lines.  Only the
// installationPath and installationVersion properties are kept; records
// missing either one are dropped.
func parseVSWhereOutput(output []byte) []vsInstance {
	var instances []vsInstance
	var current vsInstance

	flush := func() {
		if current.InstallPath != "" && current.Version != "" {
			instances = append(instances, current)
		}

		current = vsInstance{}
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}

		switch key {
		case "installationPath":
			current.InstallPath = value
		case "installationVersion":
			current.Version = value
		}
	}

	flush()

	return instances
}

// toolchainFromInstance resolves a VS instance to its MSVC toolchain
// installation.  VS 15+ instances record their default tools version in a
// text file under `VC/Auxiliary/Build`; instances without the C++ toolset
// installed are skipped, as are instances whose version string does not
// parse.
func toolchainFromInstance(instance vsInstance) (toolchain.ToolchainInstall, bool) {
	version, err := toolchain.ParseVersion(instance.Version)
	if err != nil {
		return toolchain.ToolchainInstall{}, false
	}

	versionFilePath := filepath.Join(
		instance.InstallPath,
		"VC", "Auxiliary", "Build", "Microsoft.VCToolsVersion.default.txt",
	)

	versionB, err := os.ReadFile(versionFilePath)
	if err != nil {
		return toolchain.ToolchainInstall{}, false
	}

	toolsVersion := strings.TrimSpace(string(versionB))

	root := filepath.Join(instance.InstallPath, "VC", "Tools", "MSVC", toolsVersion)
	if !dirExists(root) {
		return toolchain.ToolchainInstall{}, false
	}

	return toolchain.ToolchainInstall{Version: version, Root: root}, true
}
