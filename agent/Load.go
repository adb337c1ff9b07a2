package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a TypedConfig from a JSON (.json) or YAML (.yaml,
// .yml) file
func LoadConfig(path string) (TypedConfig, error) {
	var config TypedConfig
	if err := load(path, &config); err != nil {
		return TypedConfig{}, err
	}
	return config, nil
}

// LoadConfigList reads a TypedConfigList from a JSON (.json) or YAML
// (.yaml, .yml) file
func LoadConfigList(path string) (TypedConfigList, error) {
	var configs TypedConfigList
	if err := load(path, &configs); err != nil {
		return TypedConfigList{}, err
	}
	return configs, nil
}

// SaveConfig writes a Config, typed so that it can be read back with
// LoadConfig, to a JSON or YAML file depending on the extension of
// path
func SaveConfig(path string, c Config) error {
	return save(path, NewTypedConfig(c))
}

// SaveConfigList writes a ConfigList, typed so that it can be read
// back with LoadConfigList, to a JSON or YAML file depending on the
// extension of path
func SaveConfigList(path string, c ConfigList) error {
	return save(path, NewTypedConfigList(c))
}

func load(path string, value json.Unmarshaler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	isYAML, err := yamlExt(path)
	if err != nil {
		return err
	}

	if isYAML {
		// YAML documents are converted to JSON so that the registry
		// decoding and the text unmarshaling of rule names are shared
		// between both formats
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return &ConfigurationError{Op: "load", Err: err}
		}
		if data, err = json.Marshal(doc); err != nil {
			return &ConfigurationError{Op: "load", Err: err}
		}
	}

	if err := value.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("load %v: %w", filepath.Base(path), err)
	}
	return nil
}

func save(path string, value interface{}) error {
	isYAML, err := yamlExt(path)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if isYAML {
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// yamlExt returns whether path names a YAML file, or an error if it
// names neither a YAML nor a JSON file
func yamlExt(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return false, nil
	case ".yaml", ".yml":
		return true, nil
	default:
		return false, &ConfigurationError{Op: "load",
			Err: fmt.Errorf("unsupported file extension %q",
				filepath.Ext(path))}
	}
}
