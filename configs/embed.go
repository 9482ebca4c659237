// Package configs embeds the default server-settings file.
package configs

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.yaml
var embeddedConfigs embed.FS

// DefaultName is the settings file used when none is configured.
const DefaultName = "server.yaml"

// Load returns the embedded YAML settings file by filename.
func Load(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("embedded config name is empty")
	}
	data, err := fs.ReadFile(embeddedConfigs, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded config %q: %w", name, err)
	}
	return data, nil
}
