package dict

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var valueSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, stable for the life of the
// process. Equal values hash equally; Object hashes do not depend on
// insertion order.
func (d *Dict) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(valueSeed)
	writeHash(&h, d, 0)
	return h.Sum64()
}

func writeWord(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func writeHash(h *maphash.Hash, d *Dict, depth int) {
	p := capture(d)
	if !p.t.IsLeaf() {
		checkDepth("Hash", p.t, depth)
	}
	h.WriteByte(byte(p.t))
	switch p.t {
	case BoolType:
		if p.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		writeWord(h, uint64(p.i))
	case NumberType:
		f := p.f
		switch {
		case f == 0:
			f = 0 // -0
		case math.IsNaN(f):
			f = math.NaN()
		}
		writeWord(h, math.Float64bits(f))
	case StringType:
		writeWord(h, uint64(len(p.s)))
		h.WriteString(p.s)
	case BytesType:
		writeWord(h, uint64(len(p.bs)))
		h.Write(p.bs)
	case ArrayType:
		writeWord(h, uint64(len(p.elems)))
		for _, x := range p.elems {
			writeHash(h, x, depth+1)
		}
	case ObjectType:
		writeWord(h, uint64(len(p.fields)))
		for _, e := range p.sorted() {
			writeWord(h, uint64(len(e.Key)))
			h.WriteString(e.Key)
			writeHash(h, e.Val, depth+1)
		}
	case CallableType:
		writeWord(h, uint64(funcPointer(p.fn)))
	}
}
