package agent

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	RTDP           Type = "RTDP"
	ValueIteration Type = "ValueIteration"
)

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes = make(map[Type]reflect.Type)

// Register registers an agent's Type with a concrete Config type so
// that upon deserialization of a TypedConfig, Configs of type agentType
// are deserialized into the concrete type of config.
func Register(agentType Type, config Config) {
	registeredTypes[agentType] = reflect.TypeOf(config)
}

// Registered returns whether a Config has been registered for agentType
func Registered(agentType Type) bool {
	_, ok := registeredTypes[agentType]
	return ok
}

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
	var typed struct {
		Type   Type
		Config json.RawMessage
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return errors.Wrap(err, "unmarshalJSON: could not decode typed config")
	}

	ty, ok := registeredTypes[typed.Type]
	if !ok {
		return errors.Errorf("unmarshalJSON: no config registered for "+
			"agent type %q", typed.Type)
	}

	value := reflect.New(ty)
	if len(typed.Config) > 0 {
		if err := json.Unmarshal(typed.Config, value.Interface()); err != nil {
			return errors.Wrapf(err, "unmarshalJSON: could not decode %v "+
				"config", typed.Type)
		}
	}

	t.Type = typed.Type
	t.Config = value.Elem().Interface().(Config)

	return nil
}
