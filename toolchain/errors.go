package toolchain

import "fmt"

// UnsupportedPlatformError reports a platform token outside the recognized
// set.
type UnsupportedPlatformError struct {
	// The token that failed to map to a platform.
	Token string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform token `%s`", e.Token)
}

// InvalidVersionFormatError reports a version string that does not parse as
// a dot-separated sequence of non-negative integers.
type InvalidVersionFormatError struct {
	// The string that failed to parse.
	Input string
}

func (e *InvalidVersionFormatError) Error() string {
	return fmt.Sprintf("invalid version string `%s`", e.Input)
}

// ToolchainNotFoundError reports that an exact toolchain version was
// requested but no installation has it.
type ToolchainNotFoundError struct {
	// The requested version.
	Version Version
}

func (e *ToolchainNotFoundError) Error() string {
	return fmt.Sprintf("no installed toolchain has version `%s`", e.Version)
}

// SdkNotFoundError reports that an exact SDK version was requested but no
// installation has it.
type SdkNotFoundError struct {
	// The requested version.
	Version Version
}

func (e *SdkNotFoundError) Error() string {
	return fmt.Sprintf("no installed Windows SDK has version `%s`", e.Version)
}

// DiscoveryError reports that an underlying installation enumeration
// mechanism failed.
type DiscoveryError struct {
	// The enumeration mechanism that failed, eg. `vswhere`.
	Mechanism string

	// The underlying failure.
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("%s discovery failed: %s", e.Mechanism, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a structurally empty catalog: no admissible
// installation of the given kind exists on this machine.
type NotFoundError struct {
	// The kind of installation that is missing, eg. `toolchain`.
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s installations found", e.Kind)
}
