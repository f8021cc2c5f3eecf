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
	"time"
)

// Item is an entry in the timed queue. Enqueue creates the item and the
// queue owns it until it is handed back by Dequeue.
type Item struct {
	value     interface{}
	releaseAt time.Time

	index int    // position in the backing heap, -1 when not queued
	seq   uint64 // insertion sequence, breaks release time ties
}

// NewItem returns an item carrying the given value and release time.
func NewItem(value interface{}, releaseAt time.Time) *Item {
	return &Item{
		value:     value,
		releaseAt: releaseAt,
		index:     -1,
	}
}

// Value returns the enqueued value.
func (i *Item) Value() interface{} {
	return i.value
}

// ReleaseTime returns the absolute time at which the item became eligible
// for dequeue. A zero time means the item was enqueued ready.
func (i *Item) ReleaseTime() time.Time {
	return i.releaseAt
}
