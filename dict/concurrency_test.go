package dict

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

func TestConcurrentAliasedAppend(t *testing.T) {
	const workers, per = 8, 200
	a := NewType(ArrayType)
	var g errgroup.Group
	for w := range workers {
		h := Share(a)
		g.Go(func() error {
			for i := range per {
				h.Append(FromInt(int32(w*per + i)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if n, _ := a.Size(); n != workers*per {
		t.Errorf("size %d, want %d", n, workers*per)
	}
}

func TestConcurrentVivify(t *testing.T) {
	const workers, per = 8, 100
	o := New()
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for i := range per {
				o.AtKey(fmt.Sprintf("w%d", w)).At(i).SetInt(int32(i))
			}
			return nil
		})
		g.Go(func() error {
			for range per {
				_ = o.Keys()
				_ = o.Contains(fmt.Sprintf("w%d[0]", w))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if n, _ := o.Size(); n != workers {
		t.Fatalf("size %d", n)
	}
	for w := range workers {
		var v int32
		if res := DotVal(o, fmt.Sprintf("w%d[%d]", w, per-1), &v); res != OK || v != per-1 {
			t.Errorf("w%d: %d %v", w, v, res)
		}
	}
}

func TestCompositionLock(t *testing.T) {
	const workers, per = 8, 100
	d := Object(E("n", FromInt(0)))
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for range per {
				d.Lock()
				c := d.Field("n")
				c.SetInt(c.MustInt() + 1)
				d.Unlock()
			}
			return nil
		})
		g.Go(func() error {
			for range per {
				d.RLock()
				_ = d.Field("n").MustInt()
				d.RUnlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := d.Field("n").MustInt(); got != workers*per {
		t.Errorf("n = %d, want %d", got, workers*per)
	}
}

func TestCompositionLockAliases(t *testing.T) {
	const workers, per = 8, 500
	d := Object(E("n", FromInt(0)))
	var g errgroup.Group
	for range workers {
		h := Share(d)
		g.Go(func() error {
			for range per {
				h.Lock()
				v := h.Field("n").MustInt()
				runtime.Gosched()
				h.Field("n").SetInt(v + 1)
				h.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := d.Field("n").MustInt(); got != workers*per {
		t.Errorf("n = %d, want %d", got, workers*per)
	}
}

func TestCompositionLockRebind(t *testing.T) {
	a := NewType(ObjectType)
	h := Share(a)
	h.Lock()
	h.Become(ArrayType)
	// a still refers to the node h locked
	locked := make(chan struct{})
	go func() {
		a.Lock()
		close(locked)
		a.Unlock()
	}()
	select {
	case <-locked:
		t.Fatal("alias acquired a held composition lock")
	case <-time.After(20 * time.Millisecond):
	}
	h.Unlock()
	<-locked

	// singletons fall back to a per-handle lock
	x, y := New(), New()
	x.Lock()
	y.Lock()
	y.Unlock()
	x.Unlock()
}

func TestConcurrentReadersAndRebind(t *testing.T) {
	d := Array(FromInt(1), FromInt(2))
	var g errgroup.Group
	g.Go(func() error {
		for i := range 500 {
			if i%2 == 0 {
				d.Become(ObjectType)
			} else {
				d.Assign(Array(FromInt(1)))
			}
		}
		return nil
	})
	for range 4 {
		g.Go(func() error {
			for range 500 {
				for range d.Values() {
				}
				_, _ = d.Size()
				_ = d.Hash()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
