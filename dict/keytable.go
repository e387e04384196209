package dict

import (
	"errors"
	"fmt"
	"hash/maphash"
	"math/bits"
	"slices"
	"sync/atomic"
)

// TableOptions tunes the key table backing Object values.
type TableOptions struct {
	// MinCapacity is the smallest index size allocated for a non-empty table.
	MinCapacity int
	// MaxLoadPercent bounds index occupancy, tombstones included, before
	// the index is rebuilt at a larger size.
	MaxLoadPercent int
	// MaxEntries bounds the number of live keys in one table. Inserting
	// past it fails with HashError.
	MaxEntries int
}

func DefaultTableOptions() TableOptions {
	return TableOptions{
		MinCapacity:    8,
		MaxLoadPercent: 75,
		MaxEntries:     1 << 30,
	}
}

func (o TableOptions) Validate() error {
	if o.MinCapacity < 1 {
		return fmt.Errorf("%w: min capacity %d", ErrInvalidInput, o.MinCapacity)
	}
	if o.MaxLoadPercent < 10 || o.MaxLoadPercent > 95 {
		return fmt.Errorf("%w: max load percent %d not in [10, 95]", ErrInvalidInput, o.MaxLoadPercent)
	}
	if o.MaxEntries < 1 || o.MaxEntries > 1<<30 {
		return fmt.Errorf("%w: max entries %d", ErrInvalidInput, o.MaxEntries)
	}
	return nil
}

var tableOpts atomic.Pointer[TableOptions]

func init() {
	o := DefaultTableOptions()
	tableOpts.Store(&o)
}

// SetTableOptions installs o for tables created or resized afterwards.
func SetTableOptions(o TableOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}
	tableOpts.Store(&o)
	return nil
}

func currentTableOptions() TableOptions {
	return *tableOpts.Load()
}

var (
	errTableFull = errors.New("key table full")

	keySeed = maphash.MakeSeed()
)

const (
	slotEmpty = 0
	slotDead  = -1
)

type entry struct {
	hash uint64
	key  string
	val  *Dict // nil once removed
}

// keyTable is an insertion-ordered hash table from string keys to handles.
// Entries live in a dense slice; index is an open-addressed table of
// positions into entries, offset by one so that zero means empty.
//
// Every entry carries its precomputed hash, so probing compares hashes
// first and only touches key bytes on a hash match.
type keyTable struct {
	entries []entry
	index   []int32
	live    int
	dead    int // removed entries still occupying entries until rebuild
	used    int // non-empty index slots, tombstones included
}

func newKeyTable(capacity int) *keyTable {
	t := &keyTable{}
	if capacity > 0 {
		if err := t.reserve(capacity); err != nil {
			t.reset()
		}
	}
	return t
}

func hashKey(k string) uint64 {
	return maphash.String(keySeed, k)
}

func keyEqual(e *entry, h uint64, k string) bool {
	return e.hash == h && len(e.key) == len(k) && e.key == k
}

func (t *keyTable) len() int { return t.live }

func (t *keyTable) reset() {
	t.entries = nil
	t.index = nil
	t.live, t.dead, t.used = 0, 0, 0
}

// lookup returns the index slot and entry position of k, or -1 for the
// position when k is absent.
func (t *keyTable) lookup(h uint64, k string) (int, int) {
	if len(t.index) == 0 {
		return -1, -1
	}
	mask := uint64(len(t.index) - 1)
	i := h & mask
	for range len(t.index) {
		s := t.index[i]
		switch {
		case s == slotEmpty:
			return int(i), -1
		case s != slotDead:
			pos := int(s) - 1
			if keyEqual(&t.entries[pos], h, k) {
				return int(i), pos
			}
		}
		i = (i + 1) & mask
	}
	return -1, -1
}

func (t *keyTable) get(k string) (*Dict, bool) {
	_, pos := t.lookup(hashKey(k), k)
	if pos < 0 {
		return nil, false
	}
	return t.entries[pos].val, true
}

// insert adds k, which must not be present.
func (t *keyTable) insert(k string, v *Dict) error {
	opts := currentTableOptions()
	if t.live >= opts.MaxEntries {
		return fmt.Errorf("%w: %d entries", errTableFull, t.live)
	}
	if (t.used+1)*100 > len(t.index)*opts.MaxLoadPercent {
		if err := t.rebuild(t.live+1, opts); err != nil {
			return err
		}
	}
	h := hashKey(k)
	mask := uint64(len(t.index) - 1)
	i := h & mask
	for range len(t.index) {
		if t.index[i] == slotEmpty {
			t.entries = append(t.entries, entry{hash: h, key: k, val: v})
			t.index[i] = int32(len(t.entries))
			t.live++
			t.used++
			return nil
		}
		i = (i + 1) & mask
	}
	// rebuild guarantees free slots; reaching here is a logic error.
	panic(fmt.Errorf("%w: no free slot in key table of %d", errInternal, len(t.index)))
}

func (t *keyTable) delete(k string) bool {
	slot, pos := t.lookup(hashKey(k), k)
	if pos < 0 {
		return false
	}
	t.index[slot] = slotDead
	t.entries[pos].val = nil
	t.entries[pos].key = ""
	t.live--
	t.dead++
	// Entries keep their positions so that cursors stay valid. The next
	// rebuild on insert or reserve drops the removed ones.
	return true
}

func (t *keyTable) reserve(n int) error {
	if n <= t.live {
		return nil
	}
	opts := currentTableOptions()
	if n > opts.MaxEntries {
		return fmt.Errorf("%w: reserve %d exceeds %d", errTableFull, n, opts.MaxEntries)
	}
	if n*100 <= len(t.index)*opts.MaxLoadPercent {
		return nil
	}
	return t.rebuild(n, opts)
}

// rebuild compacts entries and reallocates the index so that n live keys
// fit under the load limit.
func (t *keyTable) rebuild(n int, opts TableOptions) error {
	want := max(n*100/opts.MaxLoadPercent+1, opts.MinCapacity)
	if want > 1<<31 {
		return fmt.Errorf("%w: index of %d slots", errTableFull, want)
	}
	size := 1 << bits.Len(uint(want-1))
	if t.dead > 0 {
		t.entries = slices.DeleteFunc(t.entries, func(e entry) bool { return e.val == nil })
		t.dead = 0
	}
	t.entries = slices.Grow(t.entries, n-len(t.entries))
	t.index = make([]int32, size)
	mask := uint64(size - 1)
	for pos := range t.entries {
		i := t.entries[pos].hash & mask
		for t.index[i] != slotEmpty {
			i = (i + 1) & mask
		}
		t.index[i] = int32(pos + 1)
	}
	t.used = len(t.entries)
	return nil
}

// next returns the position of the first live entry at or after pos, or
// len(entries).
func (t *keyTable) next(pos int) int {
	for pos < len(t.entries) && t.entries[pos].val == nil {
		pos++
	}
	return pos
}

func (t *keyTable) end() int { return len(t.entries) }

func (t *keyTable) sortedKeys() []string {
	res := make([]string, 0, t.live)
	for _, e := range t.entries {
		if e.val != nil {
			res = append(res, e.key)
		}
	}
	slices.Sort(res)
	return res
}
