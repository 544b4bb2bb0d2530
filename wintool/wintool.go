// Package wintool locates installed MSVC toolchains and Windows SDKs using
// the same machinery the Visual Studio tooling itself uses: `vswhere.exe`
// for Visual Studio instances and the Windows Kits registry keys for SDK
// roots.
package wintool

import "compilerpaths/toolchain"

// InstalledSource enumerates the toolchains and SDKs installed on this
// machine.  Enumeration is only available on Windows; on other systems
// every call fails with a discovery error.  Wrap an InstalledSource in a
// toolchain.CachedCatalog so the enumeration runs at most once per process.
type InstalledSource struct{}

// NewInstalledSource creates a source backed by the machine's Visual Studio
// and Windows Kits installations.
func NewInstalledSource() *InstalledSource {
	return &InstalledSource{}
}

var _ toolchain.Source = (*InstalledSource)(nil)
