package wintool

import (
	"os"
	"path/filepath"

	"compilerpaths/toolchain"
)

// sdkInstallsUnder enumerates the Windows 10 SDK versions installed under a
// kits root (eg. `C:\Program Files (x86)\Windows Kits\10`).  A version is
// admitted only if both its `Include/{v}/um` and `Lib/{v}/um` directories
// exist: partially installed versions never enter the catalog.  The
// returned collection is unordered.
func sdkInstallsUnder(kitsRoot string) ([]toolchain.SdkInstall, error) {
	finfos, err := os.ReadDir(filepath.Join(kitsRoot, "Include"))
	if err != nil {
		return nil, &toolchain.DiscoveryError{Mechanism: "Windows Kits layout", Err: err}
	}

	var installs []toolchain.SdkInstall
	for _, finfo := range finfos {
		if !finfo.IsDir() {
			continue
		}

		version, err := toolchain.ParseVersion(finfo.Name())
		if err != nil {
			continue
		}

		if install, ok := sdkInstallAt(kitsRoot, finfo.Name(), version); ok {
			installs = append(installs, install)
		}
	}

	return installs, nil
}

// sdkInstallAt builds the installation record for one SDK version directory
// if that version is fully installed.
func sdkInstallAt(kitsRoot, versionDir string, version toolchain.Version) (toolchain.SdkInstall, bool) {
	includeRoot := filepath.Join(kitsRoot, "Include", versionDir)
	libraryRoot := filepath.Join(kitsRoot, "Lib", versionDir)

	if !dirExists(filepath.Join(includeRoot, "um")) || !dirExists(filepath.Join(libraryRoot, "um")) {
		return toolchain.SdkInstall{}, false
	}

	return toolchain.SdkInstall{
		Version: version,
		IncludeRoots: []string{
			filepath.Join(includeRoot, "shared"),
			filepath.Join(includeRoot, "um"),
			filepath.Join(includeRoot, "ucrt"),
		},
		LibraryRoots: []string{
			filepath.Join(libraryRoot, "um"),
			filepath.Join(libraryRoot, "ucrt"),
		},
	}, true
}

// dirExists returns whether the given path exists and is a directory.
func dirExists(path string) bool {
	finfo, err := os.Stat(path)
	return err == nil && finfo.IsDir()
}
