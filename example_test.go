// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq_test

import (
	"fmt"

	"github.com/nodestripe/spq"
)

// ExampleNew demonstrates basic enqueue/dequeue usage.
func ExampleNew() {
	q := spq.New[string]()

	for _, s := range []string{"first", "second", "third"} {
		s := s
		q.Enqueue(&s)
	}

	for range 3 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// first
	// second
	// third
}

// ExampleSPQueue_Dequeue demonstrates the ErrEmpty control-flow signal on
// an exhausted queue.
func ExampleSPQueue_Dequeue() {
	q := spq.New[int]()

	v := 1
	q.Enqueue(&v)
	q.Dequeue()

	_, err := q.Dequeue()
	fmt.Println(spq.IsEmpty(err))

	// Output:
	// true
}

// ExampleWithItemCounter demonstrates enabling Size() tracking, which
// defaults to always reporting 0.
func ExampleWithItemCounter() {
	q := spq.New[int](spq.WithItemCounter[int](&spq.AtomicItemCounter{}))

	v := 1
	q.Enqueue(&v)
	w := 2
	q.Enqueue(&w)
	q.Dequeue()

	fmt.Println(q.Size())

	// Output:
	// 1
}
