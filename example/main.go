package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mickamy/ormrel/example/model"
	"github.com/mickamy/ormrel/relation"
)

func main() {
	verbose := flag.Bool("v", false, "log resolution steps")
	flag.Parse()

	opts := []relation.Option{}
	if *verbose {
		opts = append(opts, relation.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	printRelations("User", relation.ResolveType[model.User]("", opts...))
	printRelations("Post", relation.ResolveType[model.Post]("", opts...))
}

func printRelations(name string, m *relation.Map) {
	fmt.Printf("--- %s ---\n", name)
	for _, d := range m.All() {
		out, err := json.Marshal(d)
		if err != nil {
			log.Fatalf("marshal %s: %v", d.Name, err)
		}
		fmt.Printf("  %s\n", out)
	}
}
