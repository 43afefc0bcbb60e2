// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command spqdump is a line-oriented driver for spq.SPQueue, useful for
// poking at the queue's behavior from a shell.
//
// Each non-blank line read from stdin is enqueued as-is. A blank line
// triggers one Dequeue, printing the result or "(empty)". On EOF it
// prints a final Statistics summary.
//
// Run with: go run ./cmd/spqdump
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nodestripe/spq"
)

func main() {
	q := spq.New[string](
		spq.WithItemCounter[string](&spq.AtomicItemCounter{}),
		spq.WithStatSink[string](&spq.CountingStats{}),
	)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			v, err := q.Dequeue()
			if spq.IsEmpty(err) {
				fmt.Println("(empty)")
				continue
			}
			fmt.Printf("dequeued: %s\n", v)
			continue
		}
		if err := q.Enqueue(&line); err != nil {
			fmt.Fprintf(os.Stderr, "enqueue error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}

	stats := q.Statistics()
	fmt.Printf("size=%d enqueued=%d dequeued=%d created=%d retries=%d empties=%d closed=%d\n",
		q.Size(), stats.EnqueueSuccess, stats.DequeueSuccess, stats.QueueCreate,
		stats.RepeatEnqueue, stats.ReturnEmpty, stats.CloseQueue)
}
