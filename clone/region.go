package clone

import (
	"cmp"
	"maps"
	"reflect"
	"slices"
	"unsafe"
)

// region is a block of source memory reachable from the graph: the target
// of a pointer or the backing array of a slice. Regions nested inside a
// larger one share its root, and only roots are allocated in the copy.
type region struct {
	addr uintptr
	typ  reflect.Type  // T for *T, [cap]E for a slice
	src  reflect.Value // addressable view of the source memory
	root *region
	dst  unsafe.Pointer // copy of a root, nil until allocated
}

func (r *region) end() uintptr { return r.addr + r.typ.Size() }

type regionKey struct {
	addr uintptr
	typ  reflect.Type
}

// regionOf returns the memory a non-nil pointer or slice refers to.
// Zero-sized memory has no identity and is not reported.
func regionOf(v reflect.Value) (regionKey, reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || v.Type().Elem().Size() == 0 {
			return regionKey{}, reflect.Value{}, false
		}
		return regionKey{addr: v.Pointer(), typ: v.Type().Elem()}, v.Elem(), true
	case reflect.Slice:
		if v.IsNil() || v.Cap() == 0 || v.Type().Elem().Size() == 0 {
			return regionKey{}, reflect.Value{}, false
		}
		at := reflect.ArrayOf(v.Cap(), v.Type().Elem())
		return regionKey{addr: v.Pointer(), typ: at}, reflect.NewAt(at, v.UnsafePointer()).Elem(), true
	}
	return regionKey{}, reflect.Value{}, false
}

// scan records every region reachable from v, following the same edges
// copy follows.
func (c *copier) scan(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice:
		key, mem, ok := regionOf(v)
		if !ok {
			return
		}
		if _, seen := c.regions[key]; seen {
			return
		}
		c.regions[key] = &region{addr: key.addr, typ: key.typ, src: mem}
		c.scan(mem)
	case reflect.Map:
		key, ok := identity(v)
		if !ok || c.scanned[key] {
			return
		}
		c.scanned[key] = true
		it := v.MapRange()
		for it.Next() {
			c.scan(it.Key())
			c.scan(it.Value())
		}
	case reflect.Array:
		for i := range v.Len() {
			c.scan(v.Index(i))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if v.Type().Field(i).IsExported() {
				c.scan(v.Field(i))
			}
		}
	case reflect.Interface:
		if !v.IsNil() {
			c.scan(v.Elem())
		}
	}
}

// layout assigns every region to the outermost region containing it.
// Partly overlapping slice backings of one element type are merged into a
// single root spanning both.
func (c *copier) layout() {
	rs := slices.Collect(maps.Values(c.regions))
	slices.SortFunc(rs, func(a, b *region) int {
		if n := cmp.Compare(a.addr, b.addr); n != 0 {
			return n
		}
		return cmp.Compare(b.end(), a.end())
	})

	var root *region
	for _, r := range rs {
		switch {
		case root != nil && r.end() <= root.end():
			r.root = root
		case root != nil && r.addr < root.end() && mergeable(root, r):
			n := int((r.end() - root.addr) / root.typ.Elem().Size())
			root.typ = reflect.ArrayOf(n, root.typ.Elem())
			root.src = reflect.NewAt(root.typ, root.src.Addr().UnsafePointer()).Elem()
			r.root = root
		default:
			root, r.root = r, r
		}
	}
}

func mergeable(root, r *region) bool {
	if root.typ.Kind() != reflect.Array || r.typ.Kind() != reflect.Array {
		return false
	}
	elem := root.typ.Elem()
	return elem == r.typ.Elem() && (r.addr-root.addr)%elem.Size() == 0
}

// rebase returns the address in the copy that corresponds to the region
// key, copying its root on first use.
func (c *copier) rebase(key regionKey, mem reflect.Value) (unsafe.Pointer, error) {
	r, ok := c.regions[key]
	if !ok {
		r = &region{addr: key.addr, typ: key.typ, src: mem}
		r.root = r
		c.regions[key] = r
	}
	root := r.root
	if root.dst == nil {
		p := reflect.New(root.typ)
		root.dst = p.UnsafePointer()
		v, err := c.copy(root.src)
		if err != nil {
			return nil, err
		}
		p.Elem().Set(v)
	}
	return unsafe.Add(root.dst, r.addr-root.addr), nil
}
