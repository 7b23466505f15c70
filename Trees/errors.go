package Trees

import "fmt"

// UnorderedError is the panic value when two values compare as neither
// less, greater, nor equal, so the order over T isn't total. NaN is
// the usual cause.
type UnorderedError struct {
	A, B any
}

func (e UnorderedError) Error() string {
	return fmt.Sprintf("values %v and %v are not ordered", e.A, e.B)
}

// CapacityError is the panic value when the arena needs more slots than
// the handle type can index.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree can't hold more than %d nodes with the chosen handle type", e.Max)
}
