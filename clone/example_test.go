package clone_test

import (
	"fmt"

	"github.com/hasbyte1/go-minimal-ext/clone"
)

func ExampleDeep() {
	n := &Node{Name: "shared"}
	p, err := clone.Deep(Pair{A: n, B: n})
	if err != nil {
		panic(err)
	}
	fmt.Println(p.A == p.B, p.A == n)
	// Output: true false
}
