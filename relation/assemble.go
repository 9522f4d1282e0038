package relation

import (
	"github.com/mickamy/ormrel/internal/annotation"
)

// partial holds raw extracted fields before normalization.
type partial struct {
	name         string
	typ          Type
	modelFrom    string
	modelTo      string
	keyFrom      string
	keyTo        string
	modelThrough string
	keyThrough   string
	multiple     *bool
}

// assemble builds the final Descriptor, defaulting Multiple from the type.
func assemble(p partial) Descriptor {
	multiple := DefaultMultiple(p.typ)
	if p.multiple != nil {
		multiple = *p.multiple
	}
	return Descriptor{
		Name:         p.name,
		Type:         p.typ,
		ModelFrom:    p.modelFrom,
		ModelTo:      p.modelTo,
		KeyFrom:      p.keyFrom,
		KeyTo:        p.keyTo,
		ModelThrough: p.modelThrough,
		KeyThrough:   p.keyThrough,
		Multiple:     multiple,
	}
}

func assembleOverride(name string, o Override) Descriptor {
	return assemble(partial{
		name:         name,
		typ:          o.Type,
		modelFrom:    o.ModelFrom,
		modelTo:      o.ModelTo,
		keyFrom:      o.KeyFrom,
		keyTo:        o.KeyTo,
		modelThrough: o.ModelThrough,
		keyThrough:   o.KeyThrough,
		multiple:     o.Multiple,
	})
}

// assembleAnnotation uses the annotation's fields as written. The owning
// model defaults to the resolver's model name when the block omits it.
func (r *resolver) assembleAnnotation(name string, f annotation.Fields) Descriptor {
	p := partial{
		name:         name,
		typ:          Type(f.Type.String()),
		modelFrom:    f.ModelFrom.String(),
		modelTo:      f.ModelTo.String(),
		keyFrom:      f.KeyFrom.String(),
		keyTo:        f.KeyTo.String(),
		modelThrough: f.ModelThrough.String(),
		keyThrough:   f.KeyThrough.String(),
	}
	if !f.ModelFrom.Set {
		p.modelFrom = r.modelFrom
	}
	if f.Multiple.Set && !f.Multiple.Null {
		v := f.Multiple.Val
		p.multiple = &v
	}
	return assemble(p)
}
