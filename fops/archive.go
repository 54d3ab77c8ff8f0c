package fops

import (
	"fmt"

	"github.com/hupe1980/hilbert/archive"
)

// Scheme tags archive groups holding a fundamental operator set.
const Scheme = "fundamental_operator_set"

var _ archive.Writer = (*Set)(nil)

// WriteArchive stores the set as a string array of keys in position order.
func (s *Set) WriteArchive(g archive.Group, name string) error {
	sub, err := archive.CreateScheme(g, name, Scheme)
	if err != nil {
		return err
	}
	keys := make([]string, len(s.indices))
	for i, idx := range s.indices {
		keys[i] = idx.Key()
	}
	return sub.WriteStrings("indices", keys)
}

// Read loads a set written by WriteArchive.
func Read(g archive.Group, name string) (*Set, error) {
	sub, err := archive.OpenScheme(g, name, Scheme)
	if err != nil {
		return nil, err
	}
	keys, err := sub.ReadStrings("indices")
	if err != nil {
		return nil, err
	}
	s := &Set{}
	for _, key := range keys {
		idx, err := ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("read operator set %q: %w", name, err)
		}
		if s.Has(idx) {
			return nil, fmt.Errorf("fops: duplicate operator %v in %q", idx, name)
		}
		s.Insert(idx)
	}
	return s, nil
}
