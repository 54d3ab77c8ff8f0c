package fops

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidKey is returned by ParseKey for a string not produced by Key.
var ErrInvalidKey = errors.New("fops: invalid indices key")

// Indices labels one fundamental operator, e.g. Idx("up", 0).
type Indices []string

// Idx builds Indices from strings and integers.
func Idx(parts ...any) Indices {
	idx := make(Indices, len(parts))
	for i, p := range parts {
		switch v := p.(type) {
		case string:
			idx[i] = v
		case int:
			idx[i] = strconv.Itoa(v)
		case int64:
			idx[i] = strconv.FormatInt(v, 10)
		case uint64:
			idx[i] = strconv.FormatUint(v, 10)
		default:
			idx[i] = fmt.Sprint(v)
		}
	}
	return idx
}

// Key returns the canonical string form of the tuple. Every part is
// prefixed with its byte length, e.g. "2:up1:0", so distinct tuples never
// share a key whatever bytes their parts contain.
func (idx Indices) Key() string {
	var sb strings.Builder
	for _, part := range idx {
		sb.WriteString(strconv.Itoa(len(part)))
		sb.WriteByte(':')
		sb.WriteString(part)
	}
	return sb.String()
}

func (idx Indices) String() string {
	return "(" + strings.Join(idx, ",") + ")"
}

// Equal reports whether both tuples have the same parts.
func (idx Indices) Equal(other Indices) bool {
	return slices.Equal(idx, other)
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (Indices, error) {
	idx := Indices{}
	for rest := key; rest != ""; {
		head, tail, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		n, err := strconv.Atoi(head)
		if err != nil || n < 0 || n > len(tail) || head != strconv.Itoa(n) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		idx = append(idx, tail[:n])
		rest = tail[n:]
	}
	return idx, nil
}

// Block is a named group of operators, e.g. a spin channel with Size orbitals.
type Block struct {
	Name string
	Size int
}

// Set is an ordered set of fundamental operators.
// The zero value is an empty set ready to use. Not safe for concurrent mutation.
type Set struct {
	positions map[string]int
	indices   []Indices
}

// New creates a set from the given operators, in order. Duplicates keep
// their first position.
func New(indices ...Indices) *Set {
	s := &Set{}
	for _, idx := range indices {
		s.Insert(idx)
	}
	return s
}

// FromBlocks creates the set (name, 0), (name, 1), ... for every block in order.
func FromBlocks(blocks ...Block) *Set {
	s := &Set{}
	for _, b := range blocks {
		for i := range b.Size {
			s.Insert(Idx(b.Name, i))
		}
	}
	return s
}

// Insert adds idx if absent and returns its position.
func (s *Set) Insert(idx Indices) int {
	key := idx.Key()
	if pos, ok := s.positions[key]; ok {
		return pos
	}
	if s.positions == nil {
		s.positions = make(map[string]int)
	}
	pos := len(s.indices)
	s.positions[key] = pos
	s.indices = append(s.indices, slices.Clone(idx))
	return pos
}

// Size returns the number of operators.
func (s *Set) Size() int {
	return len(s.indices)
}

// Position returns the bit position assigned to idx.
func (s *Set) Position(idx Indices) (int, bool) {
	pos, ok := s.positions[idx.Key()]
	return pos, ok
}

// Has reports whether idx is in the set.
func (s *Set) Has(idx Indices) bool {
	_, ok := s.positions[idx.Key()]
	return ok
}

// At returns the operator at position pos.
func (s *Set) At(pos int) (Indices, bool) {
	if pos < 0 || pos >= len(s.indices) {
		return nil, false
	}
	return slices.Clone(s.indices[pos]), true
}

// All iterates over (position, indices) in position order.
func (s *Set) All() iter.Seq2[int, Indices] {
	return func(yield func(int, Indices) bool) {
		for pos, idx := range s.indices {
			if !yield(pos, slices.Clone(idx)) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same operators at the same positions.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return false
	}
	if s.Size() != other.Size() {
		return false
	}
	for i := range s.indices {
		if !s.indices[i].Equal(other.indices[i]) {
			return false
		}
	}
	return true
}
