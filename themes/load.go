package themes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a single theme definition from a .json or .toml file.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &def)
	case ".toml":
		err = toml.Unmarshal(data, &def)
	default:
		return Definition{}, fmt.Errorf("themes: unsupported theme file %q (want .json or .toml)", path)
	}
	if err != nil {
		return Definition{}, fmt.Errorf("themes: parsing %q: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// LoadDir registers every .json/.toml theme in dir with the provider.
// Malformed files are skipped with a warning rather than aborting the scan;
// a theme that fails to parse degrades to "not installed". It returns the
// number of themes registered. A missing directory registers nothing.
func (pr *Provider) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".toml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		def, err := LoadFile(path)
		if err != nil {
			pr.Logger.Warn().Str("file", path).Err(err).Msg("skipping unreadable theme file")
			continue
		}
		if err := pr.Register(def); err != nil {
			pr.Logger.Warn().Str("file", path).Err(err).Msg("skipping invalid theme")
			continue
		}
		loaded++
	}
	return loaded, nil
}
