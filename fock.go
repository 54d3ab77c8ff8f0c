package hilbert

import (
	"math/bits"
	"strings"

	"github.com/hupe1980/hilbert/fops"
)

// FockState encodes a fermionic occupation-number state: bit i set means
// fundamental operator i is occupied.
type FockState uint64

// MaxOperators is the number of fundamental operators a FockState can address.
const MaxOperators = 64

// OperatorSet assigns each fundamental operator its bit position.
// *fops.Set implements it.
type OperatorSet interface {
	// Size returns the number of fundamental operators.
	Size() int
	// Position returns the bit position of the operator labelled idx.
	Position(idx fops.Indices) (int, bool)
}

var _ OperatorSet = (*fops.Set)(nil)

// Occupied reports whether the mode at bit position pos is occupied.
func (f FockState) Occupied(pos int) bool {
	if pos < 0 || pos >= MaxOperators {
		return false
	}
	return f&(1<<uint(pos)) != 0
}

// Count returns the number of occupied modes (the particle number).
func (f FockState) Count() int {
	return bits.OnesCount64(uint64(f))
}

// Format renders the lowest n bits, most significant first, e.g. "0101".
func (f FockState) Format(n int) string {
	n = min(max(n, 0), MaxOperators)
	var sb strings.Builder
	sb.Grow(n)
	for pos := n - 1; pos >= 0; pos-- {
		if f.Occupied(pos) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
