package domain

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Catalog is the read-only set of topics loaded at startup
type Catalog struct {
	names  []string
	topics map[string]Topic
}

// NewCatalog builds a catalog, dropping invalid pairs and empty topics
func NewCatalog(source map[string][]WordPair) *Catalog {
	topics := make(map[string]Topic, len(source))
	for name, pairs := range source {
		valid := make([]WordPair, 0, len(pairs))
		for _, p := range pairs {
			p = NewWordPair(p.English, p.Chinese)
			if p.Valid() {
				valid = append(valid, p)
			}
		}
		if name == "" || len(valid) == 0 {
			continue
		}
		topics[name] = Topic{Name: name, Pairs: valid}
	}

	names := maps.Keys(topics)
	slices.Sort(names)

	return &Catalog{names: names, topics: topics}
}

// Names returns topic names in listing order
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Get returns the topic with the given name
func (c *Catalog) Get(name string) (Topic, bool) {
	t, ok := c.topics[name]
	return t, ok
}

// Len returns the number of registered topics
func (c *Catalog) Len() int {
	return len(c.names)
}
