package toolchain_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compilerpaths/toolchain"
)

func TestParsePlatformTokens(t *testing.T) {
	cases := []struct {
		token string
		want  toolchain.Platform
	}{
		{"x86", toolchain.PlatformX86},
		{"Win32", toolchain.PlatformX86},
		{"win32", toolchain.PlatformX86},
		{"x64", toolchain.PlatformX64},
		{"X64", toolchain.PlatformX64},
	}

	for _, c := range cases {
		got, err := toolchain.ParsePlatform(c.token)
		require.NoError(t, err, "token %q", c.token)
		assert.Equal(t, c.want, got, "token %q", c.token)
	}
}

func TestParsePlatformAnyCPU(t *testing.T) {
	// AnyCPU resolves to the host default.
	for _, token := range []string{"AnyCPU", "anycpu"} {
		got, err := toolchain.ParsePlatform(token)
		require.NoError(t, err)
		assert.Equal(t, toolchain.HostPlatform(), got)
	}
}

func TestParsePlatformUnrecognized(t *testing.T) {
	for _, token := range []string{"sparc", "arm64", "x86.x64", ""} {
		_, err := toolchain.ParsePlatform(token)
		require.Error(t, err, "token %q", token)

		var platformErr *toolchain.UnsupportedPlatformError
		require.ErrorAs(t, err, &platformErr)
		assert.Equal(t, token, platformErr.Token)
	}
}

func TestHostPlatform(t *testing.T) {
	host := toolchain.HostPlatform()

	switch runtime.GOARCH {
	case "amd64", "arm64":
		assert.Equal(t, toolchain.PlatformX64, host)
	default:
		assert.Equal(t, toolchain.PlatformX86, host)
	}

	// The host default is deterministic within a process.
	assert.Equal(t, host, toolchain.HostPlatform())
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "x86", toolchain.PlatformX86.String())
	assert.Equal(t, "x64", toolchain.PlatformX64.String())
}
