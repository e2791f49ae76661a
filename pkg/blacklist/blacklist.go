// Package blacklist provides the schema for blacklist.yaml, the list of
// taxon subtrees removed from the output taxonomy.
//
// Users edit the file to extend or replace the built-in default; every
// listed taxon and all its descendants are dropped during the build.
package blacklist

import (
	"gopkg.in/yaml.v3"
)

// Config represents the complete blacklist.yaml configuration file.
type Config struct {
	// Taxa is the list of subtree roots to remove.
	Taxa []Taxon `yaml:"taxa"`
}

// Taxon is a single blacklisted subtree root.
type Taxon struct {
	// ID is the taxon id of the subtree root in the nodes dump.
	ID int `yaml:"id"`

	// Name is a human-readable label for the entry. It is documentation
	// only and never checked against the dump.
	Name string `yaml:"name,omitempty"`
}

// Parse reads a blacklist.yaml document and validates every entry.
func Parse(data []byte) (*Config, error) {
	var res Config
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, parseError(err)
	}
	for _, t := range res.Taxa {
		if err := validate(t); err != nil {
			return nil, err
		}
	}
	return &res, nil
}

// IDs returns the blacklisted taxon ids in file order.
func (c *Config) IDs() []int {
	res := make([]int, len(c.Taxa))
	for i, t := range c.Taxa {
		res[i] = t.ID
	}
	return res
}
