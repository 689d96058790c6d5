package store

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heysubinoy/confstore/pkg/kv"
)

// document is the on-the-wire shape of a serialized NamedStore.
type document struct {
	Name   string            `yaml:"name"`
	Values map[string]string `yaml:"values"`
}

// Serialize renders the store as a YAML document carrying its name and
// current mapping. YAML is this type's chosen encoding; the kv.Serializable
// contract itself imposes none.
func (s *NamedStore) Serialize() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := document{
		Name:   s.name,
		Values: make(map[string]string, len(s.values)),
	}
	for k, v := range s.values {
		doc.Values[k] = v
	}

	// Marshalling a string map cannot fail.
	data, _ := yaml.Marshal(doc)
	return string(data)
}

// Deserialize replaces the store's name and mapping with the contents of a
// document previously produced by Serialize. On input that does not parse,
// it returns an error wrapping kv.ErrMalformed and leaves the store
// unchanged.
func (s *NamedStore) Deserialize(data string) error {
	var doc document
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return fmt.Errorf("%w: %v", kv.ErrMalformed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.name = doc.Name
	s.values = make(map[string]string, len(doc.Values))
	for k, v := range doc.Values {
		s.values[k] = v
	}
	return nil
}
