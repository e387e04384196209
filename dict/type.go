package dict

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	NumberType
	StringType
	BytesType
	ArrayType
	ObjectType
	CallableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		IntType:      "Int",
		NumberType:   "Number",
		StringType:   "String",
		BytesType:    "Bytes",
		ArrayType:    "Array",
		ObjectType:   "Object",
		CallableType: "Callable",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Bool":     BoolType,
		"Int":      IntType,
		"Number":   NumberType,
		"String":   StringType,
		"Bytes":    BytesType,
		"Array":    ArrayType,
		"Object":   ObjectType,
		"Callable": CallableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		NumberType,
		StringType,
		BytesType,
		ArrayType,
		ObjectType,
		CallableType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}

// Sized reports whether values of type t have a size.
func (t Type) Sized() bool {
	switch t {
	case StringType, BytesType, ArrayType, ObjectType:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is IntType or NumberType. Numeric reads
// convert between the two.
func (t Type) IsNumeric() bool {
	return t == IntType || t == NumberType
}
