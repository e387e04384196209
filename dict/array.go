package dict

import "slices"

type arrayNode struct {
	base
	v []*Dict
}

func (*arrayNode) typ() Type                { return ArrayType }
func (n *arrayNode) size() (int, Result)    { return len(n.v), OK }
func (n *arrayNode) clear()                 { n.v = nil }
func (n *arrayNode) accept(s Stepper) error { return s.StepArray(n.v) }

func (n *arrayNode) reserve(c int) Result {
	if c < 0 {
		return InvalidInput
	}
	if c > len(n.v) {
		n.v = slices.Grow(n.v, c-len(n.v))
	}
	return OK
}

func (n *arrayNode) slot(i int) (*Dict, Result) {
	if i < 0 || i >= len(n.v) {
		return nil, OutOfRange
	}
	return n.v[i], OK
}

func (n *arrayNode) add(v *Dict) Result {
	n.v = append(n.v, Share(v))
	return OK
}

func (n *arrayNode) remove(i int) Result {
	if i < 0 || i >= len(n.v) {
		return OutOfRange
	}
	n.v = slices.Delete(n.v, i, i+1)
	return OK
}

// at returns slot i, first growing the array with Null values so that it
// has at least i+1 elements.
func (n *arrayNode) at(i int) *Dict {
	for len(n.v) <= i {
		n.v = append(n.v, New())
	}
	return n.v[i]
}
