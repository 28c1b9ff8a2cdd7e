package pyenv

import "path/filepath"

// Config holds configuration for the Python environment the dashboard runs in.
type Config struct {
	// Root is the deployment root directory the launcher operates from.
	Root string `mapstructure:"root" default:"."`
	// Manifest is the dependency manifest path, relative to Root.
	Manifest string `mapstructure:"manifest" default:"requirements.txt"`
	// Python is the interpreter used for pip and the toolkit.
	Python string `mapstructure:"python" default:"python3"`
	// UpgradePip controls whether pip is upgraded before installing.
	UpgradePip bool `mapstructure:"upgrade_pip" default:"true"`
}

// ManifestPath returns the manifest location resolved against the root.
func (c Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	return filepath.Join(c.Root, c.Manifest)
}
