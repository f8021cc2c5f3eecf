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
	"sync"
	"time"
)

// TimedQueue defines the interface of a timed queue implementation.
// Values enqueued with a release time are held until that time has passed,
// and Dequeue blocks until the earliest item becomes ready.
type TimedQueue interface {
	// Enqueue adds a value to the queue with the given release time.
	// A zero releaseAt marks the value ready for immediate dequeue.
	Enqueue(value interface{}, releaseAt time.Time)
	// Dequeue is a blocking call to wait for the next item whose
	// release time has passed. It returns nil once the stopChan yields.
	Dequeue(stopChan <-chan struct{}) *Item
	// Length returns the number of items currently held in the queue.
	Length() int
}

// NewTimedQueue returns a timed queue object.
func NewTimedQueue(mtx *QueueMetrics) TimedQueue {
	q := &timedQueue{
		pq:         &priorityQueue{},
		wakeupChan: make(chan struct{}),
		mtx:        mtx,
	}

	heap.Init(q.pq)

	return q
}

// timedQueue implements the TimedQueue interface.
type timedQueue struct {
	sync.Mutex // mutex guarding the heap and the wakeup channel

	pq *priorityQueue // a priority queue ordered by release time

	// wakeupChan is closed and replaced on every enqueue, waking all
	// consumers currently waiting on it. The swap happens under the same
	// lock as the heap insert, so a consumer either observes the new item
	// when it rechecks the heap or holds a channel which this enqueue
	// closes. Nothing is ever sent on the channel.
	wakeupChan chan struct{}

	seq uint64        // insertion sequence number of the next item
	mtx *QueueMetrics // track queue metrics
}

// Enqueue adds a value to the queue. Waiting consumers are woken on every
// enqueue, even when the new item is not the new minimum, and reevaluate
// readiness themselves.
func (q *timedQueue) Enqueue(value interface{}, releaseAt time.Time) {
	q.Lock()
	defer q.Unlock()

	item := NewItem(value, releaseAt)
	item.seq = q.seq
	q.seq++

	heap.Push(q.pq, item)
	q.mtx.queueLength.Update(float64(q.pq.Len()))
	q.mtx.enqueues.Inc(1)

	close(q.wakeupChan)
	q.wakeupChan = make(chan struct{})
}

// popReady removes and returns the minimum item if its release time has
// passed. Otherwise it returns nil together with the duration until the
// minimum item is due, or zero if the queue is empty. Must be called with
// the queue lock held.
func (q *timedQueue) popReady() (*Item, time.Duration) {
	if q.pq.Len() == 0 {
		return nil, 0
	}

	item := (*q.pq)[0]
	now := time.Now()
	if !item.releaseAt.IsZero() && item.releaseAt.After(now) {
		return nil, item.releaseAt.Sub(now)
	}

	heap.Pop(q.pq)
	if !item.releaseAt.IsZero() {
		q.mtx.queuePopDelay.Record(now.Sub(item.releaseAt))
	}
	q.mtx.queueLength.Update(float64(q.pq.Len()))
	q.mtx.dequeues.Inc(1)
	return item, 0
}

// Dequeue blocks until the item with the earliest release time is ready,
// then removes and returns it. It returns nil once the stopChan yields.
// Any number of goroutines may dequeue concurrently; which consumer
// receives a given item is decided by the race over the queue lock, and
// readiness is always rechecked under the lock before an item is handed
// out.
func (q *timedQueue) Dequeue(stopChan <-chan struct{}) *Item {
	for {
		q.Lock()
		item, wait := q.popReady()
		if item != nil {
			q.Unlock()
			return item
		}
		wakeupChan := q.wakeupChan
		q.Unlock()

		// Bound the wait by the minimum item's release time. On an
		// empty queue there is no bound and only an enqueue or the
		// stopChan can end the wait.
		var timer *time.Timer
		var timerChan <-chan time.Time
		if wait > 0 {
			timer = time.NewTimer(wait)
			timerChan = timer.C
		}

		select {
		case <-timerChan:
			// The minimum item's release time is due. Reevaluate;
			// another consumer may have taken it first.

		case <-wakeupChan:
			// The queue changed, reevaluate the minimum.
			q.mtx.wakeups.Inc(1)

		case <-stopChan:
			if timer != nil {
				timer.Stop()
			}
			return nil
		}

		if timer != nil {
			timer.Stop()
		}
	}
}

// Length returns the number of items currently held in the queue.
func (q *timedQueue) Length() int {
	q.Lock()
	defer q.Unlock()

	return q.pq.Len()
}
