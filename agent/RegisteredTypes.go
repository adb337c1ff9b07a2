package agent

import (
	"reflect"
)

// Type represents a specific type of a solver Config.
// Config's with this type can create Solvers of the corresponding type.
type Type string

const (
	// ValueIteration solvers sweep the full model until the action
	// values stop changing
	ValueIteration Type = "ValueIteration"

	// TemporalDifference solvers learn action values from sampled
	// episodes
	TemporalDifference Type = "TemporalDifference"
)

// Registered types with the package. Once a Type has been registered
// with these maps, a Config or ConfigList with that type can be
// created.
//
// No Type's are registered wtih this package upon initialization.
// Each solver package is in charge of registering its Type with
// the package separately to avoid circular imports.
var (
	registeredConfigs = make(map[Type]reflect.Type)
	registeredLists   = make(map[Type]reflect.Type)
)

// Register registers a solver's Type with a concrete ConfigList type
// so that upon deserialization of a TypedConfig or TypedConfigList,
// the configuration is deserialized into the concrete types of the
// solver's package.
func Register(solverType Type, configs ConfigList) {
	registeredLists[solverType] = reflect.TypeOf(configs)
	registeredConfigs[solverType] = reflect.TypeOf(configs.Config())
}

// Registered returns whether a solver Type has been registered
func Registered(solverType Type) bool {
	_, ok := registeredConfigs[solverType]
	return ok
}

// defaultValue returns a pointer to the default Config or ConfigList
// of a registered type
func defaultValue(solverType Type, list bool) (reflect.Value, bool) {
	types := registeredConfigs
	if list {
		types = registeredLists
	}
	ty, found := types[solverType]
	if !found {
		return reflect.Value{}, false
	}

	value := reflect.New(ty)
	if !list {
		// Start from the defaults of the concrete ConfigList so that
		// absent fields keep their default values
		lists := reflect.New(registeredLists[solverType]).Elem()
		config := lists.Interface().(ConfigList).Config()
		value.Elem().Set(reflect.ValueOf(config))
	}
	return value, true
}
