package toolchain

import (
	"sort"
	"sync"
)

// ToolchainInstall represents one discovered toolchain installation.  It is
// immutable once constructed: the catalog owns it for the process lifetime
// and resolvers only read it.
type ToolchainInstall struct {
	// The installation version.
	Version Version

	// The absolute path to the toolchain root: the directory containing the
	// `bin`, `include`, and `lib` trees.
	Root string
}

// SdkInstall represents one discovered platform-SDK installation.  The
// library roots are architecture-unaware; the target architecture is
// appended as a trailing path segment during resolution.
type SdkInstall struct {
	// The installation version.
	Version Version

	// The absolute include directories, in the order they should be searched.
	IncludeRoots []string

	// The absolute library root directories, in the order they should be
	// searched.
	LibraryRoots []string
}

// Source enumerates raw installation records from a platform-specific
// catalog mechanism.  The returned collections are unordered and may be
// expensive to compute: callers are expected to wrap a Source in a
// CachedCatalog rather than enumerate repeatedly.
type Source interface {
	EnumToolchains() ([]ToolchainInstall, error)
	EnumSdks() ([]SdkInstall, error)
}

// Catalog provides the two discovered installation collections, each sorted
// descending by version.
type Catalog interface {
	Toolchains() ([]ToolchainInstall, error)
	Sdks() ([]SdkInstall, error)
}

// CachedCatalog is a Catalog that computes each collection at most once
// from an underlying Source and memoizes the outcome, including failures.
// Concurrent first callers block on the single enumeration rather than
// duplicating it; once a collection is populated it is never mutated, so
// later reads need no locking.
type CachedCatalog struct {
	source Source

	toolchainsOnce sync.Once
	toolchains     []ToolchainInstall
	toolchainsErr  error

	sdksOnce sync.Once
	sdks     []SdkInstall
	sdksErr  error
}

// NewCachedCatalog creates a memoizing catalog over the given source.
func NewCachedCatalog(source Source) *CachedCatalog {
	return &CachedCatalog{source: source}
}

// Toolchains returns every discovered toolchain installation sorted
// descending by version.  The underlying enumeration runs on the first
// call only.
func (c *CachedCatalog) Toolchains() ([]ToolchainInstall, error) {
	c.toolchainsOnce.Do(func() {
		installs, err := c.source.EnumToolchains()
		if err != nil {
			c.toolchainsErr = err
			return
		}

		if len(installs) == 0 {
			c.toolchainsErr = &NotFoundError{Kind: "toolchain"}
			return
		}

		sort.SliceStable(installs, func(i, j int) bool {
			return installs[i].Version.Compare(installs[j].Version) > 0
		})

		c.toolchains = installs
	})

	return c.toolchains, c.toolchainsErr
}

// Sdks returns every discovered SDK installation sorted descending by
// version.  The underlying enumeration runs on the first call only.
func (c *CachedCatalog) Sdks() ([]SdkInstall, error) {
	c.sdksOnce.Do(func() {
		installs, err := c.source.EnumSdks()
		if err != nil {
			c.sdksErr = err
			return
		}

		if len(installs) == 0 {
			c.sdksErr = &NotFoundError{Kind: "Windows SDK"}
			return
		}

		sort.SliceStable(installs, func(i, j int) bool {
			return installs[i].Version.Compare(installs[j].Version) > 0
		})

		c.sdks = installs
	})

	return c.sdks, c.sdksErr
}
