package rmlist_test

import (
	"fmt"

	"deedles.dev/rmlist"
)

func Example() {
	var ls rmlist.List[string]
	ls.PushFront("c")
	ls.PushFront("b")
	ls.PushFront("a")
	fmt.Println(&ls)

	v, _ := ls.PopBack()
	fmt.Println(v, ls.Len())

	// Output:
	// [a b c]
	// c 2
}

func ExampleList_Append() {
	a := rmlist.Of(1, 2)
	b := rmlist.Of(3, 4)
	a.Append(b)
	fmt.Println(a, b.Len())

	// Output:
	// [1 2 3 4] 0
}

func ExampleList_Drain() {
	d := rmlist.Of(1, 2, 3, 4, 5).Drain()
	for {
		front, ok := d.Next()
		if !ok {
			break
		}
		fmt.Println("front", front)

		back, ok := d.NextBack()
		if !ok {
			break
		}
		fmt.Println("back", back)
	}

	// Output:
	// front 1
	// back 5
	// front 2
	// back 4
	// front 3
}
