package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleList() List {
	return List{
		TypeAlias{Name: "byte_t", Underlying: "unsigned char"},
		Struct{Name: "Point", Fields: []Field{
			{Name: "a", Type: "int"},
			{Name: "b", Type: "char"},
		}},
		Enum{Name: "Color", Constants: []EnumConstant{
			{Name: "RED", Value: 0},
			{Name: "GREEN", Value: 5},
			{Name: "BLUE", Value: 6},
		}},
		Union{Name: "Value", Fields: []Field{
			{Name: "i", Type: "int"},
			{Name: "f", Type: "float"},
		}},
	}
}

func TestList_RoundTrip(t *testing.T) {
	original := sampleList()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded List
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

func TestList_JSONShape(t *testing.T) {
	list := List{
		TypeAlias{Name: "size_t", Underlying: "unsigned long"},
		Struct{Name: "Point", Fields: []Field{{Name: "x", Type: "int"}}},
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"kind":"typedef","name":"size_t","underlying":"unsigned long"},
		{"kind":"struct","name":"Point","fields":[{"name":"x","type":"int"}]}
	]`, string(data))
}

func TestList_EnumJSONShape(t *testing.T) {
	list := List{
		Enum{Name: "Color", Constants: []EnumConstant{{Name: "RED", Value: 0}}},
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"kind":"enum","name":"Color","constants":[{"name":"RED","value":0}]}
	]`, string(data))
}

func TestList_NegativeEnumValue(t *testing.T) {
	list := List{
		Enum{Name: "Status", Constants: []EnumConstant{{Name: "ERR", Value: -1}}},
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)

	var decoded List
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	enum, ok := decoded[0].(Enum)
	require.True(t, ok)
	assert.Equal(t, int64(-1), enum.Constants[0].Value)
}

func TestList_UnknownKind(t *testing.T) {
	var decoded List
	err := json.Unmarshal([]byte(`[{"kind":"class","name":"X"}]`), &decoded)
	assert.ErrorContains(t, err, `unknown entry kind "class"`)
}

func TestList_MarshalYAML(t *testing.T) {
	list := List{
		Struct{Name: "Point", Fields: []Field{{Name: "x", Type: "int"}}},
	}

	data, err := yaml.Marshal(list)
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	assert.Equal(t, "struct", raw[0]["kind"])
	assert.Equal(t, "Point", raw[0]["name"])
}

func TestEntry_Kinds(t *testing.T) {
	assert.Equal(t, KindTypedef, TypeAlias{}.Kind())
	assert.Equal(t, KindStruct, Struct{}.Kind())
	assert.Equal(t, KindEnum, Enum{}.Kind())
	assert.Equal(t, KindUnion, Union{}.Kind())
}
