package instance

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknap/knapsack"
)

// document is the YAML shape of an instance.
type document struct {
	Capacity int64            `yaml:"capacity"`
	Items    []knapsack.Entry `yaml:"items"`
}

// ParseYAML decodes the YAML format from r. Unknown keys are rejected.
func ParseYAML(r io.Reader) (knapsack.Instance, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return knapsack.Instance{}, fmt.Errorf("%w: empty YAML document", ErrSyntax)
		}
		return knapsack.Instance{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return knapsack.NewInstance(doc.Capacity, doc.Items...), nil
}

// WriteYAML encodes inst in the YAML format.
func WriteYAML(w io.Writer, inst knapsack.Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	items := inst.Entries
	if items == nil {
		items = []knapsack.Entry{}
	}
	if err := enc.Encode(document{Capacity: inst.Capacity, Items: items}); err != nil {
		return fmt.Errorf("instance: encode yaml: %w", err)
	}

	return enc.Close()
}
