package dict

// payload is a copy of a value's contents taken under its read lock.
// Containers are captured as slices of the shared slots, Object entries
// in insertion order.
type payload struct {
	t      Type
	b      bool
	i      int32
	f      float64
	s      string
	bs     []byte
	elems  []*Dict
	fields []Entry
	fn     Func
}

type capturer struct {
	p payload
}

func (c *capturer) StepNull() error {
	c.p.t = NullType
	return nil
}

func (c *capturer) StepBool(v bool) error {
	c.p.t, c.p.b = BoolType, v
	return nil
}

func (c *capturer) StepInt(v int32) error {
	c.p.t, c.p.i = IntType, v
	return nil
}

func (c *capturer) StepNumber(v float64) error {
	c.p.t, c.p.f = NumberType, v
	return nil
}

func (c *capturer) StepString(v string) error {
	c.p.t, c.p.s = StringType, v
	return nil
}

func (c *capturer) StepBytes(v []byte) error {
	c.p.t, c.p.bs = BytesType, v
	return nil
}

func (c *capturer) StepArray(v []*Dict) error {
	c.p.t = ArrayType
	c.p.elems = append([]*Dict(nil), v...)
	return nil
}

func (c *capturer) StepObject(v *Fields) error {
	c.p.t = ObjectType
	c.p.fields = make([]Entry, 0, v.Len())
	for k, x := range v.All() {
		c.p.fields = append(c.p.fields, Entry{Key: k, Val: x})
	}
	return nil
}

func (c *capturer) StepCallable(f Func) error {
	c.p.t, c.p.fn = CallableType, f
	return nil
}

// capture returns d's contents. No lock is held once it returns, so
// callers may recurse into the captured slots freely.
func capture(d *Dict) *payload {
	c := &capturer{}
	_ = d.Step(c)
	return &c.p
}

// sorted returns the captured Object entries in key order.
func (p *payload) sorted() []Entry {
	sortEntries(p.fields)
	return p.fields
}
