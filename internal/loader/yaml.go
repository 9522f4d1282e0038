package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mickamy/ormrel/internal/naming"
	"github.com/mickamy/ormrel/relation"
)

// File is the YAML declaration document.
//
//	models:
//	  - table: posts
//	    members:
//	      - name: user
//	        body: return this.belongsTo(User, ["userid"])
//	      - name: tags
//	        call: {verb: belongsToMany, target: Tag}
//	    relations:
//	      - name: author
//	        type: belongsTo
//	        modelTo: User
type File struct {
	Models []ModelSpec `yaml:"models"`
}

// ModelSpec declares one model.
type ModelSpec struct {
	Name        string              `yaml:"name,omitempty"` // identifier other models reference; defaults to the model name of Table
	Table       string              `yaml:"table"`
	IDAttribute string              `yaml:"idAttribute,omitempty"`
	ModelName   string              `yaml:"modelName,omitempty"`
	Members     []MemberSpec        `yaml:"members,omitempty"`
	Relations   []relation.Override `yaml:"relations,omitempty"`
}

// MemberSpec declares one member, by body text or by structured call.
type MemberSpec struct {
	Name string    `yaml:"name"`
	Body string    `yaml:"body,omitempty"`
	Call *CallSpec `yaml:"call,omitempty"`
}

// CallSpec is the YAML form of relation.Call.
type CallSpec struct {
	Verb    relation.Type `yaml:"verb"`
	Target  string        `yaml:"target"`
	Through string        `yaml:"through,omitempty"`
	Key     string        `yaml:"key,omitempty"`
}

// LoadYAML loads and parses a YAML declaration file from the given path.
func LoadYAML(path string) ([]Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declaration file %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML parses YAML data into models.
func ParseYAML(data []byte) ([]Model, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	models := make([]Model, 0, len(f.Models))
	for i, spec := range f.Models {
		if spec.Table == "" {
			return nil, fmt.Errorf("models[%d]: %w", i, ErrMissingTable)
		}
		models = append(models, Model{Name: spec.Name, Declaration: spec.declaration()})
	}
	return models, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Models {
		m := &f.Models[i]
		if m.Name == "" {
			m.Name = m.ModelName
		}
		if m.Name == "" {
			m.Name = naming.ToModelName(m.Table)
		}
	}
}

func (s ModelSpec) declaration() relation.Declaration {
	decl := relation.Declaration{
		Table:       s.Table,
		IDAttribute: s.IDAttribute,
		ModelName:   s.ModelName,
		Relations:   s.Relations,
	}
	for _, m := range s.Members {
		member := relation.Member{Name: m.Name, Body: m.Body}
		if m.Call != nil {
			member.Call = relation.Call{
				Verb:   m.Call.Verb,
				Target: m.Call.Target,
				Via:    m.Call.Through,
				Key:    m.Call.Key,
			}
		}
		decl.Members = append(decl.Members, member)
	}
	return decl
}
