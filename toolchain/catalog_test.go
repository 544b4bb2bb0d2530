package toolchain_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compilerpaths/toolchain"
)

// countingSource is a fabricated source that records how many times each
// enumeration runs.
type countingSource struct {
	toolchains []toolchain.ToolchainInstall
	sdks       []toolchain.SdkInstall

	toolchainsErr error
	sdksErr       error

	toolchainCalls atomic.Int32
	sdkCalls       atomic.Int32
}

func (s *countingSource) EnumToolchains() ([]toolchain.ToolchainInstall, error) {
	s.toolchainCalls.Add(1)
	return s.toolchains, s.toolchainsErr
}

func (s *countingSource) EnumSdks() ([]toolchain.SdkInstall, error) {
	s.sdkCalls.Add(1)
	return s.sdks, s.sdksErr
}

func vs(version, root string) toolchain.ToolchainInstall {
	return toolchain.ToolchainInstall{
		Version: toolchain.MustParseVersion(version),
		Root:    root,
	}
}

func sdk(version string) toolchain.SdkInstall {
	return toolchain.SdkInstall{Version: toolchain.MustParseVersion(version)}
}

func TestCachedCatalogSortsDescending(t *testing.T) {
	source := &countingSource{
		toolchains: []toolchain.ToolchainInstall{
			vs("14.0.0.0", "/vs14"),
			vs("16.6.30204.135", "/vs16"),
			vs("15.9.28307.1", "/vs15"),
		},
		sdks: []toolchain.SdkInstall{
			sdk("10.0.17738.0"),
			sdk("10.0.19041.0"),
			sdk("10.0.10240.0"),
		},
	}

	catalog := toolchain.NewCachedCatalog(source)

	toolchains, err := catalog.Toolchains()
	require.NoError(t, err)
	require.Len(t, toolchains, 3)
	assert.Equal(t, "/vs16", toolchains[0].Root)
	assert.Equal(t, "/vs15", toolchains[1].Root)
	assert.Equal(t, "/vs14", toolchains[2].Root)

	sdks, err := catalog.Sdks()
	require.NoError(t, err)
	require.Len(t, sdks, 3)
	assert.Equal(t, "10.0.19041.0", sdks[0].Version.String())
	assert.Equal(t, "10.0.17738.0", sdks[1].Version.String())
	assert.Equal(t, "10.0.10240.0", sdks[2].Version.String())
}

func TestCachedCatalogMemoizes(t *testing.T) {
	source := &countingSource{
		toolchains: []toolchain.ToolchainInstall{vs("14.0.0.0", "/vs14")},
		sdks:       []toolchain.SdkInstall{sdk("10.0.17738.0")},
	}

	catalog := toolchain.NewCachedCatalog(source)

	first, err := catalog.Toolchains()
	require.NoError(t, err)

	second, err := catalog.Toolchains()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), source.toolchainCalls.Load())

	_, err = catalog.Sdks()
	require.NoError(t, err)
	_, err = catalog.Sdks()
	require.NoError(t, err)
	assert.Equal(t, int32(1), source.sdkCalls.Load())
}

func TestCachedCatalogConcurrentFirstCall(t *testing.T) {
	source := &countingSource{
		toolchains: []toolchain.ToolchainInstall{vs("14.0.0.0", "/vs14")},
	}

	catalog := toolchain.NewCachedCatalog(source)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			installs, err := catalog.Toolchains()
			assert.NoError(t, err)
			assert.Len(t, installs, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), source.toolchainCalls.Load())
}

func TestCachedCatalogEmpty(t *testing.T) {
	catalog := toolchain.NewCachedCatalog(&countingSource{})

	_, err := catalog.Toolchains()
	var notFound *toolchain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "toolchain", notFound.Kind)

	_, err = catalog.Sdks()
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Windows SDK", notFound.Kind)
}

func TestCachedCatalogDiscoveryError(t *testing.T) {
	source := &countingSource{
		toolchainsErr: &toolchain.DiscoveryError{Mechanism: "vswhere", Err: assert.AnError},
	}

	catalog := toolchain.NewCachedCatalog(source)

	_, err := catalog.Toolchains()
	var discoveryErr *toolchain.DiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	assert.Equal(t, "vswhere", discoveryErr.Mechanism)
	assert.ErrorIs(t, err, assert.AnError)

	// Failures are memoized too: the enumeration never reruns.
	_, err = catalog.Toolchains()
	require.Error(t, err)
	assert.Equal(t, int32(1), source.toolchainCalls.Load())
}
