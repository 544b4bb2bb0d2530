// Package toolchain selects an installed MSVC toolchain and Windows SDK for
// a target platform and composes the compiler, include, and library paths a
// build needs to invoke the compiler.  Discovery of the installations
// themselves is delegated to a Catalog; this package only applies the
// selection policy (latest by default, exact version on request) and the
// structural path composition.
package toolchain

import (
	"path/filepath"

	"compilerpaths/util"
)

// Resolution is the answer to a single resolve call: which compiler binary
// to run and which include and library directories to hand it.  Every path
// is composed structurally from discovered roots; the composed toolchain
// paths are not existence-checked here, so a broken installation surfaces
// when the compiler is actually invoked rather than during resolution.
// The selected installation versions are recorded so callers can trace
// which installs a resolution was composed from.
type Resolution struct {
	CompilerPath string   `json:"compilerPath"`
	IncludePaths []string `json:"includePaths"`
	LibraryPaths []string `json:"libraryPaths"`

	ToolchainVersion string `json:"toolchainVersion"`
	SdkVersion       string `json:"sdkVersion"`
}

// Resolver selects one toolchain and one SDK installation from a catalog
// and composes the paths for a target platform.  A resolver is stateless
// beyond its catalog reference: Resolve may be called concurrently.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve composes the compiler, include, and library paths for the given
// target platform token.  toolchainVersion and sdkVersion, when non-empty,
// request exact installed versions; when empty the latest installed version
// is used.  Resolution either fully succeeds or fails at the first unmet
// precondition: no partial result is ever returned.
func (r *Resolver) Resolve(platform, toolchainVersion, sdkVersion string) (*Resolution, error) {
	target, err := ParsePlatform(platform)
	if err != nil {
		return nil, err
	}

	tc, err := r.selectToolchain(toolchainVersion)
	if err != nil {
		return nil, err
	}

	sdk, err := r.selectSdk(sdkVersion)
	if err != nil {
		return nil, err
	}

	// The host platform only determines the toolchain's bin layout; the
	// target platform determines everything else.
	hostDir := "Host" + HostPlatform().String()
	targetDir := target.String()

	includes := append(
		[]string{filepath.Join(tc.Root, "include")},
		sdk.IncludeRoots...,
	)

	libraries := append(
		[]string{filepath.Join(tc.Root, "lib", targetDir)},
		util.Map(sdk.LibraryRoots, func(root string) string {
			return filepath.Join(root, targetDir)
		})...,
	)

	return &Resolution{
		CompilerPath:     filepath.Join(tc.Root, "bin", hostDir, targetDir, "cl.exe"),
		IncludePaths:     includes,
		LibraryPaths:     libraries,
		ToolchainVersion: tc.Version.String(),
		SdkVersion:       sdk.Version.String(),
	}, nil
}

// selectToolchain picks the toolchain installation to use: the latest one
// if no version is requested, else the exact requested version.
func (r *Resolver) selectToolchain(requested string) (ToolchainInstall, error) {
	installs, err := r.catalog.Toolchains()
	if err != nil {
		return ToolchainInstall{}, err
	}

	if len(installs) == 0 {
		return ToolchainInstall{}, &NotFoundError{Kind: "toolchain"}
	}

	if requested == "" {
		return latestInstall(installs, func(tc ToolchainInstall) Version { return tc.Version }), nil
	}

	want, err := ParseVersion(requested)
	if err != nil {
		return ToolchainInstall{}, err
	}

	for _, install := range installs {
		if install.Version.Equal(want) {
			return install, nil
		}
	}

	return ToolchainInstall{}, &ToolchainNotFoundError{Version: want}
}

// selectSdk picks the SDK installation to use under the same policy as
// selectToolchain.
func (r *Resolver) selectSdk(requested string) (SdkInstall, error) {
	installs, err := r.catalog.Sdks()
	if err != nil {
		return SdkInstall{}, err
	}

	if len(installs) == 0 {
		return SdkInstall{}, &NotFoundError{Kind: "Windows SDK"}
	}

	if requested == "" {
		return latestInstall(installs, func(sdk SdkInstall) Version { return sdk.Version }), nil
	}

	want, err := ParseVersion(requested)
	if err != nil {
		return SdkInstall{}, err
	}

	for _, install := range installs {
		if install.Version.Equal(want) {
			return install, nil
		}
	}

	return SdkInstall{}, &SdkNotFoundError{Version: want}
}

// latestInstall returns the maximum-version element of a non-empty
// collection.  The reduction does not depend on the input ordering.
func latestInstall[T any](installs []T, version func(T) Version) T {
	best := installs[0]
	for _, install := range installs[1:] {
		if version(install).Compare(version(best)) > 0 {
			best = install
		}
	}

	return best
}
