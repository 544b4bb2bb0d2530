package toolchain

import (
	"runtime"
	"strings"
)

// Platform is a canonical target or host architecture used for path
// composition.
type Platform int

// Enumeration of the supported platforms.
const (
	PlatformX86 Platform = iota
	PlatformX64
)

// String returns the platform's canonical name as it appears in toolchain
// and SDK directory layouts.
func (p Platform) String() string {
	if p == PlatformX64 {
		return "x64"
	}

	return "x86"
}

// The table mapping recognized platform tokens (lowercased) to their
// canonical platform.  `anycpu` is absent because it resolves to the host
// default rather than a fixed platform.
var platformTokens = map[string]Platform{
	"x86":   PlatformX86,
	"win32": PlatformX86,
	"x64":   PlatformX64,
}

// The table mapping GOARCH values to the platform of the host process.
// Architectures not listed are treated as 32-bit.
var hostPlatforms = map[string]Platform{
	"386":   PlatformX86,
	"arm":   PlatformX86,
	"amd64": PlatformX64,
	"arm64": PlatformX64,
}

// ParsePlatform maps a caller-supplied platform token to its canonical
// platform.  Tokens are matched case-insensitively.  The ambiguous token
// `AnyCPU` always resolves to the host default: x64 on a 64-bit host, else
// x86.  Any token outside the recognized set is a hard error.
func ParsePlatform(token string) (Platform, error) {
	lower := strings.ToLower(token)

	if lower == "anycpu" {
		return HostPlatform(), nil
	}

	if p, ok := platformTokens[lower]; ok {
		return p, nil
	}

	return PlatformX86, &UnsupportedPlatformError{Token: token}
}

// HostPlatform returns the platform of the running process: x64 on a 64-bit
// host, else x86.
func HostPlatform() Platform {
	if p, ok := hostPlatforms[runtime.GOARCH]; ok {
		return p
	}

	return PlatformX86
}
