// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"

	"github.com/bitmark-inc/avlset/avl"
)

func Example() {
	tree := avl.New()
	for _, s := range []string{"kiwi", "apple", "mango", "apple"} {
		tree.Add(avl.String(s))
	}
	tree.Discard(avl.String("mango"))

	for it := tree.Iterate(); it.Next(); {
		fmt.Println(it.Value())
	}
	fmt.Println("count:", tree.Len())
	// Output:
	// apple
	// kiwi
	// count: 2
}

func ExampleTree_Union() {
	a := avl.Of(avl.Int(1), avl.Int(2), avl.Int(3))
	b := avl.Of(avl.Int(2), avl.Int(3), avl.Int(4))

	union, err := a.Union(b)
	if nil != err {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(union.Values())
	fmt.Println(a.Intersection(b).Values())
	fmt.Println(a.Difference(b).Values())
	// Output:
	// [1 2 3 4]
	// [2 3]
	// [1]
}

func ExampleNewWithKey() {
	type account struct {
		name    string
		balance int
	}
	tree := avl.NewWithKey(func(value interface{}) avl.Item {
		return avl.Int(value.(account).balance)
	})
	tree.Add(account{"bob", 250})
	tree.Add(account{"alice", 100})
	tree.Add(account{"carol", 175})

	richest, _ := tree.Max()
	fmt.Println(richest.(account).name)
	// Output:
	// bob
}
