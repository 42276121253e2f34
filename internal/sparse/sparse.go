// Package sparse provides a small sparse set used to hold the operations a
// builder stage offers.
//
// A sparse set supports O(1) insertion and membership testing while keeping
// a dense list of members in insertion order. The universe of values
// is fixed at construction (the number of builder operations), which keeps
// both arrays tiny.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its index in dense; dense holds the
// members in insertion order.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates an empty set that can hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value and reports whether it was newly added.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	//nolint:gosec // G115: dense never grows past capacity, which is a uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members in insertion order.
// The returned slice must not be modified.
func (s *Set) Values() []uint32 {
	return s.dense
}
