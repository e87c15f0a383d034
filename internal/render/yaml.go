package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thoscut/iwscan/internal/cell"
)

// MarshalYAML emits an ordered mapping. Values are tagged as strings so
// channel numbers and levels are quoted rather than read back as integers.
func (d document) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, k := range d.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.values[i]},
		)
	}
	return node, nil
}

func writeYAML(w io.Writer, cells []cell.Cell, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocuments(cells, opts)); err != nil {
		return err
	}
	return enc.Close()
}
