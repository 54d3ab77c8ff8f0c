package archive

import (
	"fmt"
	"slices"
)

// Group is a named container of typed fields and subgroups.
type Group interface {
	// CreateGroup creates a subgroup, replacing any entry with the same name.
	CreateGroup(name string) (Group, error)
	// OpenGroup opens an existing subgroup.
	OpenGroup(name string) (Group, error)

	// SetScheme tags the group with the schema of the record it holds.
	SetScheme(scheme string)
	// Scheme returns the scheme tag, or "" if none was set.
	Scheme() string

	WriteInt(name string, v int64) error
	ReadInt(name string) (int64, error)
	WriteUint64s(name string, v []uint64) error
	ReadUint64s(name string) ([]uint64, error)
	WriteStrings(name string, v []string) error
	ReadStrings(name string) ([]string, error)

	// Has reports whether an entry of any kind exists under name.
	Has(name string) bool
	// Keys returns the sorted names of all entries.
	Keys() []string
}

// Writer is implemented by types that persist themselves into a subgroup.
type Writer interface {
	WriteArchive(g Group, name string) error
}

// Node is the in-memory Group implementation. Its exported fields define the
// encoded form of the tree.
type Node struct {
	SchemeTag string              `json:"scheme,omitempty"`
	Ints      map[string]int64    `json:"ints,omitempty"`
	Uint64s   map[string][]uint64 `json:"uint64s,omitempty"`
	Strings   map[string][]string `json:"strings,omitempty"`
	Groups    map[string]*Node    `json:"groups,omitempty"`
}

// NewNode returns an empty group.
func NewNode() *Node {
	return &Node{}
}

func validName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	return nil
}

// remove drops name from every kind so a write replaces entries of other kinds.
func (n *Node) remove(name string) {
	delete(n.Ints, name)
	delete(n.Uint64s, name)
	delete(n.Strings, name)
	delete(n.Groups, name)
}

// CreateGroup implements Group.
func (n *Node) CreateGroup(name string) (Group, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	n.remove(name)
	if n.Groups == nil {
		n.Groups = make(map[string]*Node)
	}
	child := NewNode()
	n.Groups[name] = child
	return child, nil
}

// OpenGroup implements Group.
func (n *Node) OpenGroup(name string) (Group, error) {
	child, ok := n.Groups[name]
	if !ok || child == nil {
		return nil, fmt.Errorf("%w: group %q", ErrNotFound, name)
	}
	return child, nil
}

// SetScheme implements Group.
func (n *Node) SetScheme(scheme string) { n.SchemeTag = scheme }

// Scheme implements Group.
func (n *Node) Scheme() string { return n.SchemeTag }

// WriteInt implements Group.
func (n *Node) WriteInt(name string, v int64) error {
	if err := validName(name); err != nil {
		return err
	}
	n.remove(name)
	if n.Ints == nil {
		n.Ints = make(map[string]int64)
	}
	n.Ints[name] = v
	return nil
}

// ReadInt implements Group.
func (n *Node) ReadInt(name string) (int64, error) {
	v, ok := n.Ints[name]
	if !ok {
		return 0, fmt.Errorf("%w: int field %q", ErrNotFound, name)
	}
	return v, nil
}

// WriteUint64s implements Group. The slice is copied.
func (n *Node) WriteUint64s(name string, v []uint64) error {
	if err := validName(name); err != nil {
		return err
	}
	n.remove(name)
	if n.Uint64s == nil {
		n.Uint64s = make(map[string][]uint64)
	}
	n.Uint64s[name] = append([]uint64{}, v...)
	return nil
}

// ReadUint64s implements Group. The returned slice is a copy.
func (n *Node) ReadUint64s(name string) ([]uint64, error) {
	v, ok := n.Uint64s[name]
	if !ok {
		return nil, fmt.Errorf("%w: uint64 array %q", ErrNotFound, name)
	}
	return append([]uint64{}, v...), nil
}

// WriteStrings implements Group. The slice is copied.
func (n *Node) WriteStrings(name string, v []string) error {
	if err := validName(name); err != nil {
		return err
	}
	n.remove(name)
	if n.Strings == nil {
		n.Strings = make(map[string][]string)
	}
	n.Strings[name] = append([]string{}, v...)
	return nil
}

// ReadStrings implements Group. The returned slice is a copy.
func (n *Node) ReadStrings(name string) ([]string, error) {
	v, ok := n.Strings[name]
	if !ok {
		return nil, fmt.Errorf("%w: string array %q", ErrNotFound, name)
	}
	return append([]string{}, v...), nil
}

// Has implements Group.
func (n *Node) Has(name string) bool {
	if _, ok := n.Ints[name]; ok {
		return true
	}
	if _, ok := n.Uint64s[name]; ok {
		return true
	}
	if _, ok := n.Strings[name]; ok {
		return true
	}
	_, ok := n.Groups[name]
	return ok
}

// Keys implements Group.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Ints)+len(n.Uint64s)+len(n.Strings)+len(n.Groups))
	for k := range n.Ints {
		keys = append(keys, k)
	}
	for k := range n.Uint64s {
		keys = append(keys, k)
	}
	for k := range n.Strings {
		keys = append(keys, k)
	}
	for k := range n.Groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Write stores w under name in g.
func Write(g Group, name string, w Writer) error {
	return w.WriteArchive(g, name)
}

// CreateScheme creates a subgroup tagged with scheme.
func CreateScheme(g Group, name, scheme string) (Group, error) {
	sub, err := g.CreateGroup(name)
	if err != nil {
		return nil, err
	}
	sub.SetScheme(scheme)
	return sub, nil
}

// OpenScheme opens a subgroup and checks its scheme tag.
// An untagged group is accepted.
func OpenScheme(g Group, name, scheme string) (Group, error) {
	sub, err := g.OpenGroup(name)
	if err != nil {
		return nil, err
	}
	if got := sub.Scheme(); got != "" && got != scheme {
		return nil, &SchemeMismatchError{Name: name, Expected: scheme, Actual: got}
	}
	return sub, nil
}
