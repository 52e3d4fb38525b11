package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/parsekit/hashtable"
	"github.com/hupe1980/parsekit/topo"
	"github.com/hupe1980/parsekit/vector"
)

// graphFile is the YAML layout of a dependency graph:
//
//	nodes:
//	  expr: [term]
//	  term: [factor]
//	  factor: []
//
// Nodes is kept as a yaml.Node so numbering follows document order.
type graphFile struct {
	Nodes yaml.Node `yaml:"nodes"`
}

// graph numbers node names in order of first appearance and feeds their
// dependencies to a sorter.
type graph struct {
	names  *vector.Vector   // node id -> name
	ids    *hashtable.Table // name -> node id
	sorter *topo.Sorter
}

func newGraph(names *vector.Vector, ids *hashtable.Table, sorter *topo.Sorter) *graph {
	return &graph{names: names, ids: ids, sorter: sorter}
}

func (g *graph) intern(name string) (uint32, error) {
	if id, ok := g.ids.Get(name); ok {
		return id.(uint32), nil
	}

	id := g.names.Size()
	if _, err := g.names.Add(name, nil); err != nil {
		return 0, err
	}
	if err := g.ids.Put(name, id, nil); err != nil {
		return 0, err
	}
	g.sorter.AddEdge(id, id)
	return id, nil
}

func (g *graph) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return g.parse(data)
}

func (g *graph) parse(data []byte) error {
	var gf graphFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return fmt.Errorf("parse graph: %w", err)
	}

	switch gf.Nodes.Kind {
	case 0:
		return nil // no nodes key
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: nodes must be a mapping", gf.Nodes.Line)
	}

	content := gf.Nodes.Content
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i], content[i+1]

		var deps []string
		if err := value.Decode(&deps); err != nil {
			return fmt.Errorf("line %d: dependencies of %q: %w", value.Line, key.Value, err)
		}

		node, err := g.intern(key.Value)
		if err != nil {
			return err
		}
		for _, dep := range deps {
			d, err := g.intern(dep)
			if err != nil {
				return err
			}
			g.sorter.AddEdge(node, d)
		}
	}
	return nil
}

// name returns the name of node id.
func (g *graph) name(id uint32) string {
	v, _ := g.names.Get(id)
	s, _ := v.(string)
	return s
}

func (g *graph) namesOf(ids []uint32) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.name(id)
	}
	return out
}
