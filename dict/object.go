package dict

type objectNode struct {
	base
	t *keyTable
}

func newObjectNode(capacity int) *objectNode {
	return &objectNode{t: newKeyTable(capacity)}
}

func (*objectNode) typ() Type                { return ObjectType }
func (n *objectNode) size() (int, Result)    { return n.t.len(), OK }
func (n *objectNode) clear()                 { n.t.reset() }
func (n *objectNode) keys() []string         { return n.t.sortedKeys() }
func (n *objectNode) accept(s Stepper) error { return s.StepObject(&Fields{t: n.t}) }

func (n *objectNode) reserve(c int) Result {
	if c < 0 {
		return InvalidInput
	}
	return tableResult("reserve", n.t.reserve(c))
}

func (n *objectNode) slotKey(k string) (*Dict, Result) {
	v, ok := n.t.get(k)
	if !ok {
		return nil, NotFound
	}
	return v, OK
}

func (n *objectNode) addKey(k string, v *Dict) Result {
	if cur, ok := n.t.get(k); ok {
		cur.Assign(v)
		return OKReplaced
	}
	return tableResult("add", n.t.insert(k, Share(v)))
}

// merge inserts the entries whose keys are absent, leaving existing keys
// untouched.
func (n *objectNode) merge(es []Entry) Result {
	for i := range es {
		if _, ok := n.t.get(es[i].Key); ok {
			continue
		}
		if res := tableResult("merge", n.t.insert(es[i].Key, Share(es[i].Val))); res != OK {
			return res
		}
	}
	return OK
}

func (n *objectNode) removeKey(k string) Result {
	if !n.t.delete(k) {
		return NotFound
	}
	return OK
}

// atKey returns the value under k, inserting Null when k is absent.
func (n *objectNode) atKey(k string) *Dict {
	if v, ok := n.t.get(k); ok {
		return v
	}
	v := New()
	if err := n.t.insert(k, v); err != nil {
		failf("AtKey", ObjectType, ErrHashError, "%v", err)
	}
	return v
}

func tableResult(op string, err error) Result {
	if err == nil {
		return OK
	}
	logger().Debug("key table failure", "op", op, "error", err)
	return HashError
}
