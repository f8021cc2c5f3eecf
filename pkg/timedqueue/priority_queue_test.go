// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package timedqueue

import (
	"container/heap"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueue(t *testing.T) {
	now := time.Now()
	i1 := &Item{value: 1, releaseAt: now.Add(1 * time.Second), index: -1, seq: 1}
	i2 := &Item{value: 2, releaseAt: now.Add(2 * time.Second), index: -1, seq: 2}
	i3 := &Item{value: 3, releaseAt: now.Add(3 * time.Second), index: -1, seq: 3}
	i4 := &Item{value: 4, releaseAt: now.Add(4 * time.Second), index: -1, seq: 4}

	pq := priorityQueue{}

	pq.Push(i1)
	pq.Push(i2)
	pq.Push(i3)
	pq.Push(i4)

	assert.Equal(t, 4, pq.Len())
	assert.Equal(t, 1, pq[0].Value().(int))

	pq.Swap(0, 3)
	assert.Equal(t, 4, pq[0].Value().(int))
	assert.Equal(t, 0, i4.index)
	assert.Equal(t, 3, i1.index)
	assert.True(t, pq.Less(1, 0))

	popped := pq.Pop().(*Item)
	assert.Equal(t, 3, pq.Len())
	assert.Equal(t, -1, popped.index)
}

func TestPriorityQueueReadyFirst(t *testing.T) {
	now := time.Now()
	timed := &Item{value: "timed", releaseAt: now, index: -1, seq: 1}
	ready := &Item{value: "ready", index: -1, seq: 2}

	pq := &priorityQueue{}
	heap.Push(pq, timed)
	heap.Push(pq, ready)

	// A zero release time sorts before any concrete time.
	assert.Equal(t, "ready", (*pq)[0].Value().(string))
	assert.Equal(t, "ready", heap.Pop(pq).(*Item).Value().(string))
	assert.Equal(t, "timed", heap.Pop(pq).(*Item).Value().(string))
}

func TestPriorityQueueTieBreak(t *testing.T) {
	release := time.Now()
	first := &Item{value: "first", releaseAt: release, index: -1, seq: 1}
	second := &Item{value: "second", releaseAt: release, index: -1, seq: 2}

	pq := &priorityQueue{}
	heap.Push(pq, second)
	heap.Push(pq, first)

	assert.Equal(t, "first", heap.Pop(pq).(*Item).Value().(string))
	assert.Equal(t, "second", heap.Pop(pq).(*Item).Value().(string))
}
