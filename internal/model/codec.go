package model

import (
	"encoding/json"
	"fmt"
)

// envelope is the internally tagged wire form shared by all variants.
// Fields that do not belong to a variant stay empty and are omitted.
type envelope struct {
	Kind       Kind           `json:"kind" yaml:"kind"`
	Name       string         `json:"name" yaml:"name"`
	Underlying string         `json:"underlying,omitempty" yaml:"underlying,omitempty"`
	Fields     []Field        `json:"fields,omitempty" yaml:"fields,omitempty"`
	Constants  []EnumConstant `json:"constants,omitempty" yaml:"constants,omitempty"`
}

func toEnvelope(e Entry) envelope {
	switch v := e.(type) {
	case TypeAlias:
		return envelope{Kind: KindTypedef, Name: v.Name, Underlying: v.Underlying}
	case Struct:
		return envelope{Kind: KindStruct, Name: v.Name, Fields: v.Fields}
	case Enum:
		return envelope{Kind: KindEnum, Name: v.Name, Constants: v.Constants}
	case Union:
		return envelope{Kind: KindUnion, Name: v.Name, Fields: v.Fields}
	default:
		panic(fmt.Sprintf("model: entry type %T outside the closed variant set", e))
	}
}

func (env envelope) entry() (Entry, error) {
	switch env.Kind {
	case KindTypedef:
		return TypeAlias{Name: env.Name, Underlying: env.Underlying}, nil
	case KindStruct:
		return Struct{Name: env.Name, Fields: env.Fields}, nil
	case KindEnum:
		return Enum{Name: env.Name, Constants: env.Constants}, nil
	case KindUnion:
		return Union{Name: env.Name, Fields: env.Fields}, nil
	default:
		return nil, fmt.Errorf("unknown entry kind %q", env.Kind)
	}
}

func (l List) envelopes() []envelope {
	envs := make([]envelope, 0, len(l))
	for _, e := range l {
		envs = append(envs, toEnvelope(e))
	}

	return envs
}

// MarshalJSON encodes the list as a JSON array of tagged objects.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.envelopes())
}

// UnmarshalJSON decodes a JSON array of tagged objects back into the
// concrete variants, preserving order.
func (l *List) UnmarshalJSON(data []byte) error {
	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return fmt.Errorf("decoding entry list: %w", err)
	}

	out := make(List, 0, len(envs))
	for _, env := range envs {
		e, err := env.entry()
		if err != nil {
			return err
		}

		out = append(out, e)
	}

	*l = out
	return nil
}

// MarshalYAML encodes the list as a YAML sequence of tagged mappings,
// mirroring the JSON shape.
func (l List) MarshalYAML() (interface{}, error) {
	return l.envelopes(), nil
}
