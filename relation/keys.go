package relation

import (
	"github.com/mickamy/ormrel/internal/naming"
)

// infer derives keys and cardinality for a classified call.
// Fields that depend on an undetermined target stay empty.
func (r *resolver) infer(name string, in inference) Descriptor {
	p := partial{
		name:      name,
		typ:       in.verb,
		modelFrom: r.modelFrom,
		modelTo:   in.modelTo,
	}

	switch in.verb {
	case BelongsToType:
		p.keyFrom = in.key
		if p.keyFrom == "" {
			p.keyFrom = naming.ToForeignKey(in.modelTo)
		}
		p.keyTo = r.idAttr

	case BelongsToManyType, MorphToType:
		p.keyFrom = r.idAttr
		p.keyTo = naming.ToForeignKey(r.modelFrom)
		if in.through == "" && in.modelTo != "" {
			p.modelThrough = naming.JoinModelName(r.modelFrom, in.modelTo)
			p.keyThrough = naming.ToForeignKey(in.modelTo)
		}

	default: // hasOne, hasMany, morphOne, morphMany
		p.keyFrom = r.idAttr
		p.keyTo = in.key
		if p.keyTo == "" {
			p.keyTo = naming.ToForeignKey(r.modelFrom)
		}
		if in.verb == MorphOneType {
			single := false
			p.multiple = &single
		}
	}

	if in.through != "" {
		p.modelThrough = in.through
		p.keyThrough = naming.ToForeignKey(in.modelTo)
	}

	return assemble(p)
}
