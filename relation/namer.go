package relation

// TableNamer can be implemented by model structs to declare their table.
type TableNamer interface {
	TableName() string
}

// IDAttributer can be implemented by model structs whose primary key
// column is not "id".
type IDAttributer interface {
	IDAttribute() string
}

// ModelNamer can be implemented by model structs to override the
// conventional model name derived from the table.
type ModelNamer interface {
	ModelName() string
}

// RelationDeclarer is implemented by model structs that list their
// relation members.
type RelationDeclarer interface {
	RelationMembers() []Member
}

// OverrideDeclarer is implemented by model structs that carry structured
// relation overrides.
type OverrideDeclarer interface {
	RelationOverrides() []Override
}

// Describe builds the Declaration of model type T.
// Each interface may be implemented with a value or pointer receiver.
// If T does not implement TableNamer, fallback is used as the table.
func Describe[T any](fallback string) Declaration {
	var zero T
	v := any(&zero)

	decl := Declaration{Table: fallback}
	if tn, ok := v.(TableNamer); ok {
		decl.Table = tn.TableName()
	}
	if ia, ok := v.(IDAttributer); ok {
		decl.IDAttribute = ia.IDAttribute()
	}
	if mn, ok := v.(ModelNamer); ok {
		decl.ModelName = mn.ModelName()
	}
	if rd, ok := v.(RelationDeclarer); ok {
		decl.Members = rd.RelationMembers()
	}
	if od, ok := v.(OverrideDeclarer); ok {
		decl.Relations = od.RelationOverrides()
	}
	return decl
}

// ResolveType is Resolve(Describe[T](fallback), opts...).
func ResolveType[T any](fallback string, opts ...Option) *Map {
	return Resolve(Describe[T](fallback), opts...)
}
