package interval_test

import (
	"fmt"

	"github.com/katalvlaran/chronet/interval"
)

func ExampleSet_Covers() {
	s := interval.New[int]()
	s.Insert(0, 3)
	s.Insert(5, 8)
	fmt.Println(s.Covers(2), s.Covers(4), s.Covers(6))
	// Output:
	// true false true
}
