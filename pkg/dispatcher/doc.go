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
Package dispatcher implements a task dispatcher on top of the timed queue.
Any item enqueued into the dispatcher needs to implement the Task
interface, which provides a unique string identifier and a Run function.
The dispatcher provides an Enqueue function which can be used to schedule
a task with an absolute time of when it should run. When that time passes,
the task is handed to a worker pool and run. If the run returns an error,
the task is rescheduled with a growing backoff until the retry policy is
exhausted, at which point the task is dropped.
*/
package dispatcher
