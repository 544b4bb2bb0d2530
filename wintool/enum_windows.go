//go:build windows

package wintool

import (
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"compilerpaths/toolchain"
)

// EnumToolchains enumerates the installed MSVC toolchains using
// `vswhere.exe`.  The returned collection is unordered.
func (s *InstalledSource) EnumToolchains() ([]toolchain.ToolchainInstall, error) {
	// Calculate the path to `vswhere.exe` and make sure it exists.
	vswherePath := filepath.Join(
		os.Getenv("ProgramFiles(x86)"),
		"Microsoft Visual Studio", "Installer", "vswhere.exe",
	)

	if _, err := os.Stat(vswherePath); err != nil {
		return nil, &toolchain.DiscoveryError{Mechanism: "vswhere", Err: err}
	}

	output, err := exec.Command(vswherePath, vswhereArgs...).Output()
	if err != nil {
		return nil, &toolchain.DiscoveryError{Mechanism: "vswhere", Err: err}
	}

	var installs []toolchain.ToolchainInstall
	for _, instance := range parseVSWhereOutput(output) {
		if install, ok := toolchainFromInstance(instance); ok {
			installs = append(installs, install)
		}
	}

	return installs, nil
}

// EnumSdks enumerates the installed Windows 10 SDKs starting from the
// Windows Kits registry root.  The returned collection is unordered.
func (s *InstalledSource) EnumSdks() ([]toolchain.SdkInstall, error) {
	k, err := registry.OpenKey(
		registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows Kits\Installed Roots`,
		registry.QUERY_VALUE,
	)
	if err != nil {
		return nil, &toolchain.DiscoveryError{Mechanism: "Windows Kits registry", Err: err}
	}
	defer k.Close()

	kitsRoot, _, err := k.GetStringValue("KitsRoot10")
	if err != nil {
		return nil, &toolchain.DiscoveryError{Mechanism: "Windows Kits registry", Err: err}
	}

	return sdkInstallsUnder(kitsRoot)
}
