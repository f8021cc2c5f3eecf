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

/*
Package timedqueue implements a concurrent timed queue.
Values are enqueued together with an absolute release time indicating when
they become eligible for dequeue; a zero release time marks a value as ready
immediately. Dequeue is a blocking call which returns the item with the
earliest release time once that time has passed, waiting otherwise without
spinning. Any number of goroutines may enqueue and dequeue concurrently;
every enqueue wakes all waiting consumers so they can reevaluate which item
is due next.
*/
package timedqueue
