package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/mickamy/ormrel/relation"
)

// render encodes results as a document keyed by model, in model order.
func render(results []result, format string) ([]byte, error) {
	switch format {
	case "json":
		return renderJSON(results)
	case "yaml":
		return renderYAML(results)
	case "dump":
		return renderDump(results), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func renderJSON(results []result) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range results {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Model)
		if err != nil {
			return nil, err //nolint:wrapcheck // string marshal
		}
		val, err := json.Marshal(r.Relations)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", r.Model, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func renderYAML(results []result) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range results {
		var val yaml.Node
		if err := val.Encode(r.Relations); err != nil {
			return nil, fmt.Errorf("marshal %s: %w", r.Model, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Model},
			&val,
		)
	}
	return yaml.Marshal(doc) //nolint:wrapcheck // encoder errors are self-describing
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// renderDump prints every descriptor as a Go value, for debugging.
func renderDump(results []result) []byte {
	var buf bytes.Buffer
	for _, r := range results {
		descriptors := make([]relation.Descriptor, 0, r.Relations.Len())
		for _, d := range r.Relations.All() {
			descriptors = append(descriptors, d)
		}
		fmt.Fprintf(&buf, "%s: ", r.Model)
		dumpConfig.Fdump(&buf, descriptors)
	}
	return buf.Bytes()
}
