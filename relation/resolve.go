package relation

import (
	"context"
	"log/slog"

	"github.com/mickamy/ormrel/internal/annotation"
	"github.com/mickamy/ormrel/internal/expr"
	"github.com/mickamy/ormrel/internal/naming"
)

// Source identifies where a descriptor came from.
type Source int

const (
	SourceNone Source = iota
	SourceOverride
	SourceAnnotation
	SourceInferred
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceAnnotation:
		return "annotation"
	case SourceInferred:
		return "inferred"
	default:
		return "none"
	}
}

// Resolve derives the relation descriptors of decl.
//
// Each member is resolved independently, taking the first source that
// applies: a structured override with the member's name, an annotation
// block in its body, then a relation-forming call (Member.Call, or one
// found in the body). Members matched by none are omitted. Overrides
// naming no member follow the members in the result.
//
// Resolve performs no I/O and keeps no state between calls.
func Resolve(decl Declaration, opts ...Option) *Map {
	r := newResolver(decl, newConfig(opts))

	out := newMap(len(decl.Members) + len(decl.Relations))
	members := make(map[string]struct{}, len(decl.Members))

	for _, m := range decl.Members {
		if r.isReserved(m.Name) {
			continue
		}
		members[m.Name] = struct{}{}

		d, src := r.member(m)
		r.log(m.Name, src)
		if src == SourceNone {
			continue
		}
		r.checkType(d)
		out.set(m.Name, d)
	}

	for _, o := range decl.Relations {
		if o.Name == "" || r.isReserved(o.Name) {
			continue
		}
		if _, ok := members[o.Name]; ok {
			continue
		}
		r.log(o.Name, SourceOverride)
		d := assembleOverride(o.Name, o)
		r.checkType(d)
		out.set(o.Name, d)
	}
	return out
}

type resolver struct {
	decl      Declaration
	cfg       *config
	modelFrom string
	idAttr    string
	overrides map[string]Override
}

func newResolver(decl Declaration, cfg *config) *resolver {
	modelFrom := cfg.modelName
	if modelFrom == "" {
		modelFrom = decl.ModelName
	}
	if modelFrom == "" {
		modelFrom = naming.ToModelName(decl.Table)
	}

	overrides := make(map[string]Override, len(decl.Relations))
	for _, o := range decl.Relations {
		if _, dup := overrides[o.Name]; !dup {
			overrides[o.Name] = o
		}
	}

	return &resolver{
		decl:      decl,
		cfg:       cfg,
		modelFrom: modelFrom,
		idAttr:    decl.idAttribute(),
		overrides: overrides,
	}
}

func (r *resolver) isReserved(name string) bool {
	if name == "" {
		return true
	}
	_, ok := r.cfg.reserved[name]
	return ok
}

// member applies the source precedence to a single member.
func (r *resolver) member(m Member) (Descriptor, Source) {
	if o, ok := r.overrides[m.Name]; ok {
		return assembleOverride(m.Name, o), SourceOverride
	}

	if f, ok := annotation.Parse(m.Body); ok {
		return r.assembleAnnotation(m.Name, f), SourceAnnotation
	}

	if !m.Call.IsZero() {
		return r.infer(m.Name, r.structured(m.Call)), SourceInferred
	}
	if c, ok := expr.Parse(m.Body); ok {
		return r.infer(m.Name, r.parsed(c)), SourceInferred
	}
	return Descriptor{}, SourceNone
}

func (r *resolver) log(name string, src Source) {
	if !r.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if src == SourceNone {
		r.cfg.logger.Debug("member skipped", "model", r.modelFrom, "member", name)
		return
	}
	r.cfg.logger.Debug("relation resolved", "model", r.modelFrom, "member", name, "source", src.String())
}

// checkType warns about a declared type that is not a known relation kind.
// The descriptor is kept as declared.
func (r *resolver) checkType(d Descriptor) {
	if d.Type == "" || d.Type.Valid() {
		return
	}
	r.cfg.logger.Warn("unknown relation type", "model", r.modelFrom, "member", d.Name, "type", string(d.Type))
}

// inference is a classified call with its model references resolved.
type inference struct {
	verb    Type
	modelTo string
	through string
	key     string
}

func (r *resolver) structured(c Call) inference {
	return inference{
		verb:    c.Verb,
		modelTo: r.modelRef(c.Target),
		through: r.modelRef(c.Via),
		key:     c.Key,
	}
}

func (r *resolver) parsed(c expr.Call) inference {
	return inference{
		verb:    Type(c.Verb),
		modelTo: r.token(c.Target),
		through: r.token(c.Through),
		key:     c.Key,
	}
}

// token resolves a parsed target or through argument. Identifiers may
// reference registered models; literals are used as written; anything
// else is undetermined.
func (r *resolver) token(t expr.Token) string {
	switch t.Kind {
	case expr.TokenIdent:
		return r.modelRef(t.Text)
	case expr.TokenString:
		return t.Text
	default:
		return ""
	}
}

func (r *resolver) modelRef(ident string) string {
	if table, ok := r.cfg.models[ident]; ok {
		return naming.ToModelName(table)
	}
	return ident
}
