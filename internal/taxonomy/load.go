package taxonomy

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// fileEntry is the per-category shape of a taxonomy override file.
type fileEntry struct {
	ID           int      `yaml:"id"`
	CodePrefixes []string `yaml:"code_prefixes"`
	Keywords     []string `yaml:"keywords"`
	Subsegments  []string `yaml:"subsegments"`
}

// LoadFile reads a taxonomy override from a YAML file of the form
//
//	Category Name:
//	  id: 1
//	  code_prefixes: ["47.71"]
//	  keywords: ["clothing"]
//	  subsegments: ["Apparel"]
//
// Document order is preserved, since table order drives tie-breaking.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "taxonomy: read %s", path)
	}

	// Decode via yaml.Node to keep the mapping in file order; a plain map
	// destination would lose it.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, eris.Wrapf(err, "taxonomy: parse %s", path)
	}
	if len(root.Content) == 0 {
		return nil, eris.Errorf("taxonomy: %s is empty", path)
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, eris.Errorf("taxonomy: %s: top level must be a mapping", path)
	}

	var table Table
	seenIDs := make(map[int]string)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode, valNode := doc.Content[i], doc.Content[i+1]

		name := keyNode.Value
		if name == "" {
			return nil, eris.Errorf("taxonomy: %s: empty category name", path)
		}

		var entry fileEntry
		if err := valNode.Decode(&entry); err != nil {
			return nil, eris.Wrapf(err, "taxonomy: %s: category %q", path, name)
		}
		if entry.ID <= 0 {
			return nil, eris.Errorf("taxonomy: %s: category %q needs an id > 0", path, name)
		}
		if prev, dup := seenIDs[entry.ID]; dup {
			return nil, eris.Errorf("taxonomy: %s: id %d used by both %q and %q", path, entry.ID, prev, name)
		}
		seenIDs[entry.ID] = name

		table = append(table, Category{
			Name:         name,
			ID:           entry.ID,
			CodePrefixes: entry.CodePrefixes,
			Keywords:     entry.Keywords,
			Subsegments:  entry.Subsegments,
		})
	}

	if len(table) == 0 {
		return nil, eris.Errorf("taxonomy: %s defines no categories", path)
	}
	return table, nil
}
