package table

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads rows from a YAML file holding a list of lists, the first
// being the header. Scalars keep their YAML type, so 30 is a number and
// "0042" a string. Integers keep every digit.
func LoadYAML(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rows file: %w", err)
	}

	var raw [][]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rows file: %w", err)
	}

	rows := make([]Row, len(raw))
	for i, nodes := range raw {
		row := make(Row, len(nodes))
		for j := range nodes {
			c, err := nodeCell(&nodes[j])
			if err != nil {
				return nil, fmt.Errorf("parsing rows file: row %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = c
		}
		rows[i] = row
	}
	return rows, nil
}

// nodeCell converts one scalar. Integer literals, including those too large
// for int64 that YAML resolves as floats, become exact Integer cells.
func nodeCell(n *yaml.Node) (Cell, error) {
	if n.Kind == yaml.ScalarNode && (n.ShortTag() == "!!int" || n.ShortTag() == "!!float") {
		if b, ok := new(big.Int).SetString(n.Value, 0); ok {
			return Integer(b), nil
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return Cell{}, err
	}
	return FromAny(v), nil
}
