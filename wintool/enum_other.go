//go:build !windows

package wintool

import (
	"errors"

	"compilerpaths/toolchain"
)

// This enumeration machinery is only actually usable on Windows.
var errNotWindows = errors.New("MSVC discovery is only available on Windows")

func (s *InstalledSource) EnumToolchains() ([]toolchain.ToolchainInstall, error) {
	return nil, &toolchain.DiscoveryError{Mechanism: "vswhere", Err: errNotWindows}
}

func (s *InstalledSource) EnumSdks() ([]toolchain.SdkInstall, error) {
	return nil, &toolchain.DiscoveryError{Mechanism: "Windows Kits registry", Err: errNotWindows}
}
