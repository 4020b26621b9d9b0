package clone

import (
	"fmt"
	"reflect"
)

// Copier is implemented by types that know how to copy themselves. The
// returned value must be assignable to the receiver's type.
type Copier interface {
	DeepCopy() any
}

// Deep returns a deep copy of src that shares no pointers, maps or slices
// with it while preserving the sharing and cycles inside it.
//
// Sharing is tracked by memory, not only by reference: a pointer to a field
// or element of a copied value, and a slice that views part of another
// slice's backing array, point into the single copy of that memory. Two
// slices of different element types whose backing ranges partly overlap are
// the one case copied independently.
func Deep[T any](src T) (T, error) {
	var zero T
	c := newCopier()

	in := reflect.ValueOf(&src).Elem()
	c.scan(in)
	c.layout()

	out, err := c.copy(in)
	if err != nil {
		return zero, err
	}
	res := reflect.New(in.Type())
	res.Elem().Set(out)
	return *res.Interface().(*T), nil
}

// MustDeep is like Deep but panics on error.
func MustDeep[T any](src T) T {
	v, err := Deep(src)
	if err != nil {
		panic(err)
	}
	return v
}

type visitKey struct {
	ptr      uintptr
	typ      reflect.Type
	len, cap int
}

type copier struct {
	regions map[regionKey]*region
	scanned map[visitKey]bool
	visited map[visitKey]reflect.Value
}

func newCopier() *copier {
	return &copier{
		regions: make(map[regionKey]*region),
		scanned: make(map[visitKey]bool),
		visited: make(map[visitKey]reflect.Value),
	}
}

// identity returns the memo key of v, if v has reference identity.
func identity(v reflect.Value) (visitKey, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return visitKey{}, false
		}
		return visitKey{ptr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() {
			return visitKey{}, false
		}
		return visitKey{ptr: v.Pointer(), typ: v.Type(), len: v.Len(), cap: v.Cap()}, true
	}
	return visitKey{}, false
}

func (c *copier) copy(src reflect.Value) (reflect.Value, error) {
	if !src.IsValid() {
		return src, nil
	}
	if dst, ok, err := c.custom(src); ok || err != nil {
		return dst, err
	}

	typ := src.Type()
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return reflect.Zero(typ), nil
		}
		key, mem, ok := regionOf(src)
		if !ok {
			return as(reflect.New(typ.Elem()), typ), nil
		}
		p, err := c.rebase(key, mem)
		if err != nil {
			return reflect.Value{}, err
		}
		return as(reflect.NewAt(key.typ, p), typ), nil

	case reflect.Slice:
		if src.IsNil() {
			return reflect.Zero(typ), nil
		}
		key, mem, ok := regionOf(src)
		if !ok {
			return reflect.MakeSlice(typ, src.Len(), src.Cap()), nil
		}
		p, err := c.rebase(key, mem)
		if err != nil {
			return reflect.Value{}, err
		}
		backing := reflect.NewAt(key.typ, p).Elem()
		return as(backing.Slice3(0, src.Len(), src.Cap()), typ), nil

	case reflect.Map:
		if src.IsNil() {
			return reflect.Zero(typ), nil
		}
		key, _ := identity(src)
		if dst, ok := c.visited[key]; ok {
			return dst, nil
		}
		dst := reflect.MakeMapWithSize(typ, src.Len())
		c.visited[key] = dst
		it := src.MapRange()
		for it.Next() {
			k, err := c.copy(it.Key())
			if err != nil {
				return reflect.Value{}, err
			}
			v, err := c.copy(it.Value())
			if err != nil {
				return reflect.Value{}, err
			}
			dst.SetMapIndex(k, v)
		}
		return dst, nil

	case reflect.Array:
		dst := reflect.New(typ).Elem()
		for i := range src.Len() {
			v, err := c.copy(src.Index(i))
			if err != nil {
				return reflect.Value{}, err
			}
			dst.Index(i).Set(v)
		}
		return dst, nil

	case reflect.Struct:
		dst := reflect.New(typ).Elem()
		dst.Set(src)
		for i := range typ.NumField() {
			if !typ.Field(i).IsExported() {
				continue
			}
			f, err := c.copy(src.Field(i))
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w (field %s.%s)", err, typ, typ.Field(i).Name)
			}
			dst.Field(i).Set(f)
		}
		return dst, nil

	case reflect.Interface:
		if src.IsNil() {
			return reflect.Zero(typ), nil
		}
		elem, err := c.copy(src.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		dst := reflect.New(typ).Elem()
		dst.Set(elem)
		return dst, nil

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if src.IsNil() {
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotCopyable, typ)
	}

	// bool, numbers, strings: plain values
	return src, nil
}

// as converts v to typ when typ is a named form of v's type.
func as(v reflect.Value, typ reflect.Type) reflect.Value {
	if v.Type() == typ {
		return v
	}
	return v.Convert(typ)
}

// custom applies a Copier implementation, if src has one. Results are
// memoised per reference so shared copiers stay shared.
func (c *copier) custom(src reflect.Value) (reflect.Value, bool, error) {
	switch src.Kind() {
	case reflect.Interface:
		return reflect.Value{}, false, nil
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if src.IsNil() {
			return reflect.Value{}, false, nil
		}
	}
	if !src.CanInterface() {
		return reflect.Value{}, false, nil
	}
	cp, ok := src.Interface().(Copier)
	if !ok {
		return reflect.Value{}, false, nil
	}

	key, tracked := identity(src)
	if tracked {
		if dst, ok := c.visited[key]; ok {
			return dst, true, nil
		}
	}

	typ := src.Type()
	dst := reflect.New(typ).Elem()
	if out := reflect.ValueOf(cp.DeepCopy()); out.IsValid() {
		if typ.Kind() == reflect.Pointer && out.Type().AssignableTo(typ.Elem()) {
			p := reflect.New(typ.Elem())
			p.Elem().Set(out)
			out = p
		}
		if !out.Type().AssignableTo(typ) {
			return reflect.Value{}, true, fmt.Errorf("%w: %s from %s", ErrCopierType, out.Type(), typ)
		}
		dst.Set(out)
	}
	if tracked {
		c.visited[key] = dst
	}
	return dst, true, nil
}
