package base

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Table is a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Append adds a row.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// OrDash returns *s, or "-" when s is nil.
func OrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// Render writes v in format. table is called only for the table format.
func (c *Command) Render(format string, v any, table func() *Table) error {
	switch format {
	case FormatTable, "":
		c.UI.Output(table().String())
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		c.UI.Output(string(out))
	case FormatYAML:
		out, err := toYAML(v)
		if err != nil {
			return err
		}
		c.UI.Output(strings.TrimRight(string(out), "\n"))
	default:
		return fmt.Errorf("unknown format %q: use table, json or yaml", format)
	}
	return nil
}

// toYAML renders v through its JSON encoding, so YAML keys match the API
// field names and keep their order.
func toYAML(v any) ([]byte, error) {
	js, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding JSON: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(js, &node); err != nil {
		return nil, fmt.Errorf("error converting to YAML: %w", err)
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("error encoding YAML: %w", err)
	}
	return out, nil
}

// blockStyle clears the flow and quoting styles JSON input leaves behind.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
