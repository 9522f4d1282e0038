package relation

// Declaration describes a model as the host ORM layer declares it.
type Declaration struct {
	Table       string // table or collection identifier
	IDAttribute string // primary key column; "" means "id"
	ModelName   string // model name override carried by the model itself

	// Members are the model's named members in declaration order.
	Members []Member

	// Relations holds structured overrides, matched to members by name.
	// Overrides naming no member are resolved after the members.
	Relations []Override
}

// Member is one named member of a model.
//
// Body is the member's declarative source: it may contain an annotation
// block and a relation-forming call. Call, when its Verb is set, is used
// instead of inferring from Body.
type Member struct {
	Name string
	Body string
	Call Call
}

// Override is a structured relation definition. Its fields are used
// verbatim; only Multiple is defaulted from Type when nil.
type Override struct {
	Name         string `yaml:"name" json:"name"`
	Type         Type   `yaml:"type" json:"type"`
	ModelFrom    string `yaml:"modelFrom" json:"modelFrom"`
	ModelTo      string `yaml:"modelTo" json:"modelTo"`
	KeyFrom      string `yaml:"keyFrom" json:"keyFrom"`
	KeyTo        string `yaml:"keyTo" json:"keyTo"`
	ModelThrough string `yaml:"modelThrough" json:"modelThrough"`
	KeyThrough   string `yaml:"keyThrough" json:"keyThrough"`
	Multiple     *bool  `yaml:"multiple" json:"multiple"`
}

// Rel returns a Member whose relation is given by a structured call.
//
//	relation.Rel("patients", relation.HasMany("Patient").Through("Appointment"))
func Rel(name string, c Call) Member {
	return Member{Name: name, Call: c}
}

// idAttribute returns the declared primary key column or "id".
func (d Declaration) idAttribute() string {
	if d.IDAttribute != "" {
		return d.IDAttribute
	}
	return "id"
}
