package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mickamy/ormrel/internal/loader"
	"github.com/mickamy/ormrel/relation"
)

var version = "dev"

func main() {
	file := flag.String("file", "", "Go or YAML model sources, comma separated (default: $GOFILE)")
	typeName := flag.String("type", "", "model to resolve (optional; all models if omitted)")
	modelName := flag.String("model", "", "owning model name override (optional; requires -type)")
	format := flag.String("format", "json", "output format: json, yaml or dump")
	verbose := flag.Bool("v", false, "log how each member was resolved to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ormrel", version)
		return
	}

	if *file == "" {
		*file = os.Getenv("GOFILE")
	}
	if *file == "" {
		log.Fatal("-file flag is required (or run via go:generate)")
	}
	if *modelName != "" && *typeName == "" {
		log.Fatal("-model requires -type")
	}

	ctx := context.Background()

	all, err := loader.Load(ctx, strings.Split(*file, ",")...)
	if err != nil {
		log.Fatalf("load: %v", err)
	}

	targets := all
	if *typeName != "" {
		m, err := loader.Find(all, *typeName)
		if err != nil {
			log.Fatalf("load: %v", err)
		}
		targets = []loader.Model{m}
	}

	opts := []relation.Option{relation.WithModels(loader.Registry(all))}
	if *modelName != "" {
		opts = append(opts, relation.WithModelName(*modelName))
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, relation.WithLogger(logger))
	}

	results, err := resolveAll(ctx, targets, opts)
	if err != nil {
		log.Fatalf("resolve: %v", err)
	}

	out, err := render(results, *format)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("write: %v", err)
	}
}

// result is the resolved relation map of one model.
type result struct {
	Model     string
	Relations *relation.Map
}

// resolveAll resolves every model concurrently; results keep input order.
func resolveAll(ctx context.Context, models []loader.Model, opts []relation.Option) ([]result, error) {
	results := make([]result, len(models))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range models {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck // cancellation
			}
			results[i] = result{Model: m.Name, Relations: relation.Resolve(m.Declaration, opts...)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // cancellation
	}
	return results, nil
}
