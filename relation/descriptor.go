package relation

import (
	"encoding/json"
)

// Type is a relation kind.
type Type string

const (
	BelongsToType     Type = "belongsTo"
	BelongsToManyType Type = "belongsToMany"
	HasOneType        Type = "hasOne"
	HasManyType       Type = "hasMany"
	MorphOneType      Type = "morphOne"
	MorphToType       Type = "morphTo"
	MorphManyType     Type = "morphMany"
)

// Types lists every relation kind.
var Types = []Type{
	BelongsToType,
	BelongsToManyType,
	HasOneType,
	HasManyType,
	MorphOneType,
	MorphToType,
	MorphManyType,
}

// Valid reports whether t is one of the known relation kinds.
func (t Type) Valid() bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

// DefaultMultiple returns the cardinality a relation of kind t has when
// nothing states it explicitly: single for belongsTo and hasOne,
// a collection for everything else.
func DefaultMultiple(t Type) bool {
	switch t {
	case BelongsToType, HasOneType:
		return false
	default:
		return true
	}
}

// Descriptor is the normalized description of one relation.
// Empty strings mean "undetermined" and encode as null.
type Descriptor struct {
	Name         string // member the descriptor was derived from
	Type         Type
	ModelFrom    string // owning model
	ModelTo      string // target model
	KeyFrom      string // join column on the owning side
	KeyTo        string // join column on the target side
	ModelThrough string // intermediate model, if any
	KeyThrough   string // column on the intermediate model pointing to the target
	Multiple     bool
}

type descriptorDoc struct {
	Name         string  `json:"name" yaml:"name"`
	Type         *string `json:"type" yaml:"type"`
	ModelFrom    *string `json:"modelFrom" yaml:"modelFrom"`
	ModelTo      *string `json:"modelTo" yaml:"modelTo"`
	KeyFrom      *string `json:"keyFrom" yaml:"keyFrom"`
	KeyTo        *string `json:"keyTo" yaml:"keyTo"`
	ModelThrough *string `json:"modelThrough" yaml:"modelThrough"`
	KeyThrough   *string `json:"keyThrough" yaml:"keyThrough"`
	Multiple     bool    `json:"multiple" yaml:"multiple"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (d Descriptor) doc() descriptorDoc {
	return descriptorDoc{
		Name:         d.Name,
		Type:         nullable(string(d.Type)),
		ModelFrom:    nullable(d.ModelFrom),
		ModelTo:      nullable(d.ModelTo),
		KeyFrom:      nullable(d.KeyFrom),
		KeyTo:        nullable(d.KeyTo),
		ModelThrough: nullable(d.ModelThrough),
		KeyThrough:   nullable(d.KeyThrough),
		Multiple:     d.Multiple,
	}
}

// MarshalJSON encodes d with null for undetermined fields.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.doc())
}

// MarshalYAML encodes d with null for undetermined fields.
func (d Descriptor) MarshalYAML() (any, error) {
	return d.doc(), nil
}
