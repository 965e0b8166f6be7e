package canvas

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"readySet/venn"
)

type exportFile struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Sets    []exportSet  `yaml:"sets"`
	Diagram []exportNode `yaml:"diagram"`
}

type exportSet struct {
	Name     string    `yaml:"name"`
	Color    string    `yaml:"color"`
	Elements []float64 `yaml:"elements,flow"`
}

type exportNode struct {
	Kind        string               `yaml:"kind"`
	Set         string               `yaml:"set,omitempty"`
	Description string               `yaml:"description,omitempty"`
	Gap         float64              `yaml:"gap,omitempty"`
	Alignment   string               `yaml:"alignment,omitempty"`
	Offset      *venn.ThreewayOffset `yaml:"offset,omitempty"`
	Children    []exportNode         `yaml:"children,omitempty"`
}

// Export writes the current file, its sets and its diagram as YAML.
func (c *Canvas) Export() ([]byte, error) {
	f := c.file()
	doc := exportFile{
		ID:      f.id.String(),
		Name:    f.name,
		Sets:    make([]exportSet, len(f.sets)),
		Diagram: make([]exportNode, len(c.nodes)),
	}
	for i, s := range f.sets {
		doc.Sets[i] = exportSet{Name: s.Name, Color: s.Color, Elements: s.Sorted()}
	}
	for i, n := range c.nodes {
		doc.Diagram[i] = exportOf(n)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not export %s: %w", f.name, err)
	}
	return out, nil
}

func exportOf(n venn.Node) exportNode {
	e := exportNode{Kind: n.Kind().String()}
	switch n := n.(type) {
	case venn.PlainSet:
		e.Set = n.Set.Name
	case venn.Intersection:
		e.Description = n.Description
		e.Gap = n.Gap
	case venn.Containment:
		e.Description = n.Description
		e.Alignment = n.Alignment.String()
	case venn.Threeway:
		e.Description = n.Description
		e.Offset = &n.Offset
	}
	for _, child := range venn.Children(n) {
		e.Children = append(e.Children, exportOf(child))
	}
	return e
}
