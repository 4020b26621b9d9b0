package arr_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-minimal-ext/arr"
)

func TestGridSetAt(t *testing.T) {
	g := arr.NewGrid[int](2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %dx%d; want 2x3", g.Rows(), g.Cols())
	}
	if err := g.Set(1, 2, 9); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := g.At(1, 2)
	if !ok || v != 9 {
		t.Fatalf("At(1,2) = %v, %v; want 9, true", v, ok)
	}
	if _, ok := g.At(2, 0); ok {
		t.Fatal("At out of range should return false")
	}
	if err := g.Set(0, 3, 1); !errors.Is(err, arr.ErrIndexOutOfRange) {
		t.Fatalf("Set out of range error = %v", err)
	}
	assertSlice(t, g.Row(1), []int{0, 0, 9})
}

func TestGridClear(t *testing.T) {
	g := arr.NewGrid[string](1, 2)
	_ = g.Set(0, 0, "x")
	g.Clear()
	if v, _ := g.At(0, 0); v != "" {
		t.Fatalf("after Clear At(0,0) = %q; want empty", v)
	}
}

func TestToGridString(t *testing.T) {
	g := arr.NewGrid[int](2, 2)
	_ = g.Set(0, 0, 1)
	_ = g.Set(1, 1, 4)
	want := "[[1,\t0],\n [0,\t4]]"
	if got := arr.ToGridString(g); got != want {
		t.Fatalf("ToGridString = %q; want %q", got, want)
	}
	if got := arr.ToGridString[int](nil); got != "[]" {
		t.Fatalf("ToGridString nil = %q; want []", got)
	}
}

func TestNilGrid(t *testing.T) {
	var g *arr.Grid[int]
	if g.Rows() != 0 || g.Cols() != 0 || g.Row(0) != nil {
		t.Fatal("nil grid should report zero dimensions")
	}
	g.Clear()
	if got := arr.ToGridString(g); got != "[]" {
		t.Fatalf("ToGridString(nil) = %q; want []", got)
	}
}
