package component_test

import (
	"fmt"

	"github.com/katalvlaran/chronet/component"
)

func ExampleComponent_Contains() {
	c := component.NewComponent(3, 1, 2)
	fmt.Println(c.Size(), c.Contains(2), c.Contains(9))
	// Output:
	// 3 true false
}
