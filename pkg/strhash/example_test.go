package strhash_test

import (
	"fmt"

	"strhash/pkg/strhash"
)

func ExampleTransform() {
	fmt.Println(strhash.Transform("hello"))
	// Output:
	// 8?$$!
}

func ExamplePad() {
	fmt.Println(strhash.Pad("abcdefghij", 5))
	fmt.Println(strhash.Pad("ab", 5))
	// Output:
	// abcde
	// ab000
}
