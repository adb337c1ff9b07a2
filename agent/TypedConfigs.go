package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable
// of its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	value, typeName, err := unmarshalTyped(data, "Config", false)
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = value.Interface().(Config)
	return nil
}

// TypedConfigList implements functionality for typing a ConfigList.
type TypedConfigList struct {
	Type
	ConfigList
}

// NewTypedConfigList types the argument ConfigList and returns it
// as a TypedConfigList which explicitly holds its Type.
func NewTypedConfigList(c ConfigList) TypedConfigList {
	return TypedConfigList{Type: c.Type(), ConfigList: c}
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfigList) UnmarshalJSON(data []byte) error {
	value, typeName, err := unmarshalTyped(data, "ConfigList", true)
	if err != nil {
		return err
	}

	t.Type = typeName
	t.ConfigList = value.Interface().(ConfigList)
	return nil
}

// At returns the Config at index i in the TypedConfigList
func (t *TypedConfigList) At(i int) Config {
	return ConfigAt(i, t.ConfigList)
}

// unmarshalTyped uses reflection to unmarshal a Config or ConfigList
// into its concrete registered type. Both the concrete value and its
// Type are returned.
func unmarshalTyped(data []byte, valueField string,
	list bool) (reflect.Value, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return reflect.Value{}, "", &ConfigurationError{Op: "unmarshal",
			Err: err}
	}

	var typeName Type
	if err := json.Unmarshal(m["Type"], &typeName); err != nil {
		return reflect.Value{}, "", &ConfigurationError{Op: "unmarshal",
			Err: fmt.Errorf("missing solver type: %w", err)}
	}

	value, found := defaultValue(typeName, list)
	if !found {
		return reflect.Value{}, "", &ConfigurationError{Op: "unmarshal",
			Err: fmt.Errorf("unknown solver type %q", typeName)}
	}

	if body, ok := m[valueField]; ok {
		if err := json.Unmarshal(body, value.Interface()); err != nil {
			return reflect.Value{}, "", &ConfigurationError{
				Op:  "unmarshal",
				Err: err,
			}
		}
	}

	return value.Elem(), typeName, nil
}
