package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compilerpaths/common"
	"compilerpaths/project"
)

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	contents := `platform = "x64"
toolchain-version = "14.0.0.0"
sdk-version = "10.0.17738.0"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ProjectFileName), []byte(contents), 0o644))

	proj, err := project.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "x64", proj.Platform)
	assert.Equal(t, "14.0.0.0", proj.ToolchainVersion)
	assert.Equal(t, "10.0.17738.0", proj.SdkVersion)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	proj, err := project.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &project.Project{}, proj)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ProjectFileName), []byte("platform = [["), 0o644))

	_, err := project.Load(dir)
	require.Error(t, err)
}
