package relation

import (
	"log/slog"
)

// Option configures a Resolve call.
type Option func(*config)

type config struct {
	modelName string
	models    map[string]string
	reserved  map[string]struct{}
	logger    *slog.Logger
}

// defaultReserved are member names that never describe a relation.
var defaultReserved = []string{
	"constructor",
	"tableName", "TableName",
	"idAttribute", "IDAttribute",
	"modelName", "ModelName",
}

func newConfig(opts []Option) *config {
	cfg := &config{
		reserved: make(map[string]struct{}, len(defaultReserved)),
	}
	for _, name := range defaultReserved {
		cfg.reserved[name] = struct{}{}
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithModelName overrides the owning model name of every inferred or
// annotated descriptor.
func WithModelName(name string) Option {
	return func(c *config) { c.modelName = name }
}

// WithModels registers model identifiers that relation calls may reference,
// keyed by identifier and mapped to their table. A call targeting a
// registered identifier resolves to the table's conventional model name.
func WithModels(models map[string]string) Option {
	return func(c *config) {
		if c.models == nil {
			c.models = make(map[string]string, len(models))
		}
		for ident, table := range models {
			c.models[ident] = table
		}
	}
}

// WithReserved adds member names that are never treated as relations.
func WithReserved(names ...string) Option {
	return func(c *config) {
		for _, name := range names {
			c.reserved[name] = struct{}{}
		}
	}
}

// WithLogger sets the logger receiving debug records about how each
// member was resolved. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
