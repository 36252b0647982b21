package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/lumen/internal/domain"
)

// FileName is the workspace config file looked up at the workspace root.
const FileName = "lumen.yaml"

// Load reads lumen.yaml from the workspace root. When the file is missing
// it still returns a usable testnet config alongside a not_found error.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)

	b, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

// Parse decodes lumen.yaml content. path is only used in error messages.
func Parse(path string, b []byte) (domain.Config, error) {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return Defaults(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapConfig(path, y)
}

// Defaults is domain.DefaultConfig with the testnet endpoints resolved.
func Defaults() domain.Config {
	cfg := domain.DefaultConfig()
	_ = ResolveNetwork(&cfg.Network)
	return cfg
}
