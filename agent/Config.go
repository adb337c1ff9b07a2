package agent

import (
	"log/slog"
	"reflect"
)

// Config represents a configuration for creating a solver
type Config interface {
	// CreateSolver creates the solver that the config describes
	CreateSolver(seed uint64, logger *slog.Logger) (Solver, error)

	// ValidSolver returns whether the argument solver is valid for the
	// Config
	ValidSolver(Solver) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of solver constructed by the Config
	Type() Type
}

// ConfigList stores a number of Configs compactly. Instead of storing
// a slice of Configs, a ConfigList is a struct holding a slice of
// values for each field of its Config, and the list is constructed by
// every combination of field values.
//
// A field whose slice is empty keeps the value held by the Config
// returned by the Config method, so a ConfigList only needs to name
// the fields it sweeps over.
type ConfigList interface {
	// Config returns the Config whose fields are overwritten by the
	// values stored in the list
	Config() Config

	// Type returns the type of solver constructed by the Configs in
	// the list
	Type() Type

	// Len returns the number of Configs in the list
	Len() int
}

// ListLen returns the number of Configs stored by a ConfigList
// implemented as a struct of slices
func ListLen(list ConfigList) int {
	rValue := reflect.ValueOf(list)

	length := 1
	for i := 0; i < rValue.NumField(); i++ {
		if n := rValue.Field(i).Len(); n > 0 {
			length *= n
		}
	}
	return length
}

// ConfigAt returns the Config at index i in the ConfigList. The first
// field of the list varies fastest. ConfigAt panics if i is out of
// range.
func ConfigAt(i int, list ConfigList) Config {
	if i < 0 || i >= list.Len() {
		panic("configAt: index out of range")
	}

	listValue := reflect.ValueOf(list)
	config := reflect.New(reflect.TypeOf(list.Config())).Elem()
	config.Set(reflect.ValueOf(list.Config()))

	for f := 0; f < listValue.NumField(); f++ {
		values := listValue.Field(f)
		if values.Len() == 0 {
			continue
		}

		name := listValue.Type().Field(f).Name
		config.FieldByName(name).Set(values.Index(i % values.Len()))
		i /= values.Len()
	}

	return config.Interface().(Config)
}
