// Package loader builds relation declarations from model sources: Go files
// declaring model structs, and YAML declaration documents.
package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mickamy/ormrel/relation"
)

// Model is a named model declaration.
type Model struct {
	Name        string // identifier other models use to reference it, e.g. the Go type name
	Declaration relation.Declaration
}

// Load reads every path concurrently, choosing the format by extension,
// and returns the models in path order.
func Load(ctx context.Context, paths ...string) ([]Model, error) {
	results := make([][]Model, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck // cancellation
			}
			models, err := loadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = models
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already wrapped per path
	}

	var all []Model
	for _, models := range results {
		all = append(all, models...)
	}
	if len(all) == 0 {
		return nil, ErrNoModels
	}
	return all, nil
}

func loadFile(path string) ([]Model, error) {
	switch filepath.Ext(path) {
	case ".go":
		return ParseGo(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, ErrUnsupportedFile
	}
}

// Registry maps each model's identifier to its table, for use with
// relation.WithModels.
func Registry(models []Model) map[string]string {
	reg := make(map[string]string, len(models))
	for _, m := range models {
		reg[m.Name] = m.Declaration.Table
	}
	return reg
}

// Find returns the model with the given identifier.
func Find(models []Model, name string) (Model, error) {
	for _, m := range models {
		if m.Name == name {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %s", ErrUnknownModel, name)
}
