package seq_test

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-minimal-ext/seq"
)

func ExampleAppend() {
	s := seq.Append(seq.Prepend(seq.Of("b"), "a"), "c")
	fmt.Println(slices.Collect(s))
	// Output: [a b c]
}

func ExampleAreAllSame() {
	same, _ := seq.AreAllSame(seq.Of(3, 3, 3))
	fmt.Println(same)
	// Output: true
}

func ExamplePickRandomN() {
	picked := slices.Collect(seq.PickRandomN(seq.Of(1, 2), 5))
	fmt.Println(len(picked))
	// Output: 2
}
