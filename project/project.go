// Package project loads the optional per-project defaults file that lets a
// build pin its platform and toolchain versions without repeating them on
// every invocation.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"compilerpaths/common"
)

// Project represents the resolution defaults as they are encoded in TOML.
// Every field is optional; command-line flags take precedence over file
// values.
type Project struct {
	Platform         string `toml:"platform"`
	ToolchainVersion string `toml:"toolchain-version"`
	SdkVersion       string `toml:"sdk-version"`
}

// Load reads the project file from the given directory.  A missing file is
// not an error: the zero project is returned so every default falls through
// to the command line.
func Load(dir string) (*Project, error) {
	path := filepath.Join(dir, common.ProjectFileName)

	buff, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Project{}, nil
		}

		return nil, fmt.Errorf("unable to read project file at `%s`: %w", path, err)
	}

	proj := &Project{}
	if err := toml.Unmarshal(buff, proj); err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %w", path, err)
	}

	return proj, nil
}
