// Copyright 2025 The dynhook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owner

import (
	"sync"
	"testing"
)

// TestCurrent_Stable verifies the ID is positive and stable within a goroutine.
func TestCurrent_Stable(t *testing.T) {
	id := Current()
	if id <= 0 {
		t.Fatalf("Current() returned non-positive ID: %d", id)
	}
	if id2 := Current(); id2 != id {
		t.Errorf("Current() not stable: first=%d, second=%d", id, id2)
	}
}

// TestCurrent_Distinct verifies concurrently running goroutines get distinct IDs.
func TestCurrent_Distinct(t *testing.T) {
	const numGoroutines = 50

	ids := make(chan int64, numGoroutines)
	var wg sync.WaitGroup
	// Hold every goroutine alive until all have reported, so IDs cannot be reused.
	release := make(chan struct{})
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- Current()
			<-release
		}()
	}

	seen := make(map[int64]bool, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		id := <-ids
		if seen[id] {
			t.Errorf("duplicate goroutine ID %d", id)
		}
		seen[id] = true
	}
	close(release)
	wg.Wait()
}

// TestParse covers well-formed and malformed stack headers.
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"running", "goroutine 123 [running]:\nmain.main()", 123},
		{"single digit", "goroutine 1 [running]:", 1},
		{"no digits", "goroutine  [running]:", 0},
		{"wrong prefix", "thread 123 [running]:", 0},
		{"short", "gorou", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse([]byte(tt.in)); got != tt.want {
				t.Errorf("parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
